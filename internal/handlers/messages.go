package handlers

import (
	"fmt"
	"strings"

	"github.com/SanyamDa/DeadelinesBot/internal/models"
	"github.com/SanyamDa/DeadelinesBot/internal/query"
)

const helpMessage = `🗓️ How to use Deadline Bot:

Adding Deadlines:
Use /add and I'll guide you through:
1. Enter the deadline title
2. Enter the due date (YYYY-MM-DD format)
3. Select a category

Viewing Deadlines:
Use /view followed by a category:
• /view university - Show university deadlines
• /view academic - Show academic deadlines
• /view personal - Show personal deadlines
• /view ia - Show IA deadlines
• /view ee - Show EE deadlines
• /view work - Show work deadlines
• /view other - Show other deadlines
• /view all - Show all deadlines

Examples:
• /add - Start adding a deadline
• /view university - View university deadlines
• /view all - View all deadlines`

func welcomeMessage(name string) string {
	return fmt.Sprintf(`🗓️ Deadline Bot 🗓️

Welcome, %s! I can help you manage your deadlines.

Available Commands:
• /add - Add a new deadline
• /view - View deadlines by category
• /help - Show this help message

Categories available:
• university
• academic
• personal
• ia (Internal Assessment)
• ee (Extended Essay)
• work
• other

Get started by adding your first deadline with /add!`, name)
}

func invalidCategoryMessage(scope string) string {
	names := make([]string, 0, len(models.Categories)+1)
	for _, c := range models.Categories {
		names = append(names, string(c))
	}
	names = append(names, models.ScopeAll)
	return fmt.Sprintf("❌ Invalid category '%s'. Available categories:\n%s", scope, strings.Join(names, ", "))
}

// formatDeadlines renders a queried listing. In "all" scope each record
// carries its category tag; in a single category the header names it once.
func formatDeadlines(scope string, results []query.Result) string {
	var b strings.Builder
	if scope == models.ScopeAll {
		b.WriteString("📋 Deadlines:\n\n")
	} else {
		fmt.Fprintf(&b, "📋 Deadlines - %s:\n\n", strings.ToUpper(scope))
	}

	for _, r := range results {
		if scope == models.ScopeAll {
			fmt.Fprintf(&b, "• %s [%s]\n", r.Title, strings.ToUpper(string(r.Category)))
		} else {
			fmt.Fprintf(&b, "• %s\n", r.Title)
		}
		fmt.Fprintf(&b, "  📅 %s - %s\n\n", r.Date, statusLine(r.Status))
	}
	return b.String()
}

func statusLine(s models.Status) string {
	switch s.Urgency {
	case models.UrgencyOverdue:
		return fmt.Sprintf("⚠️ OVERDUE (%d days ago)", s.Days)
	case models.UrgencyDueToday:
		return "🔥 DUE TODAY"
	case models.UrgencyCritical:
		return fmt.Sprintf("🚨 %d days left", s.Days)
	case models.UrgencySoon:
		return fmt.Sprintf("⏰ %d days left", s.Days)
	case models.UrgencyScheduled:
		return fmt.Sprintf("📅 %d days left", s.Days)
	default:
		// Record with an unreadable date; show it without an urgency call.
		return "📅"
	}
}
