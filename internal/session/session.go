package session

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/SanyamDa/DeadelinesBot/internal/models"
)

// Appender is the write side of the deadline store.
type Appender interface {
	Add(cat models.Category, d models.Deadline) error
}

// Reply is what the dialog hands back to the transport: text to show the
// user and, when non-empty, a set of categories to offer as buttons.
type Reply struct {
	Text    string
	Choices []models.Category
}

const (
	promptTitle         = "📝 Let's add a new deadline!\n\nPlease enter the title/description of your deadline:"
	promptTitleRetry    = "❌ The title can't be empty. Please enter the title/description of your deadline:"
	promptDate          = "📅 Great! Now enter the due date in YYYY-MM-DD format (e.g., 2024-12-25):"
	promptDateRetry     = "❌ Invalid date format. Please use YYYY-MM-DD format (e.g., 2024-12-25):"
	promptCategory      = "🏷️ Finally, select a category for this deadline:"
	promptCategoryRetry = "❌ That's not one of the categories. Pick one of the options below:"
	msgSaveFailed       = "❌ Couldn't save your deadline. Pick a category again to retry."
	helpNudge           = "Use /add to add a deadline or /view to see your deadlines. Type /help for more information."
)

// Manager runs the add-deadline dialog for every user. Sessions are keyed
// by user ID; users never share dialog state.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
	store    Appender
	now      func() time.Time
}

func NewManager(store Appender) *Manager {
	return &Manager{
		sessions: make(map[string]*models.Session),
		store:    store,
		now:      time.Now,
	}
}

// Stage reports where a user currently is in the dialog.
func (m *Manager) Stage(userID string) models.Stage {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[userID]; ok {
		return s.Stage
	}
	return models.StageNone
}

// StartAdd begins the dialog for a user. Any draft already in progress is
// discarded; the add command always wins.
func (m *Manager) StartAdd(userID string) Reply {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[userID] = &models.Session{Stage: models.StageAwaitingTitle}
	return Reply{Text: promptTitle}
}

// HandleText feeds free text into the user's dialog. Users with no dialog
// in flight get a pointer at the commands instead.
func (m *Manager) HandleText(userID, text string) Reply {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		return Reply{Text: helpNudge}
	}

	switch s.Stage {
	case models.StageAwaitingTitle:
		title := strings.TrimSpace(text)
		if title == "" {
			return Reply{Text: promptTitleRetry}
		}
		s.DraftTitle = title
		s.Stage = models.StageAwaitingDate
		return Reply{Text: promptDate}

	case models.StageAwaitingDate:
		date := strings.TrimSpace(text)
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			// Stay put; the user retries until the date parses.
			return Reply{Text: promptDateRetry}
		}
		s.DraftDate = date
		s.Stage = models.StageAwaitingCategory
		return Reply{Text: promptCategory, Choices: models.Categories}

	case models.StageAwaitingCategory:
		// Typing the category name works the same as pressing its button.
		return m.completeLocked(userID, s, strings.ToLower(strings.TrimSpace(text)))
	}

	return Reply{Text: helpNudge}
}

// SelectCategory completes the dialog with the chosen category. Stray
// selections from users who aren't at the category step are shrugged off.
func (m *Manager) SelectCategory(userID, choice string) Reply {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok || s.Stage != models.StageAwaitingCategory {
		return Reply{Text: helpNudge}
	}
	return m.completeLocked(userID, s, choice)
}

func (m *Manager) completeLocked(userID string, s *models.Session, choice string) Reply {
	cat, err := models.ParseCategory(choice)
	if err != nil {
		return Reply{Text: promptCategoryRetry, Choices: models.Categories}
	}

	d := models.Deadline{
		Title:   s.DraftTitle,
		Date:    s.DraftDate,
		AddedOn: m.now().Format(models.AddedOnLayout),
	}
	if err := m.store.Add(cat, d); err != nil {
		log.Printf("❌ Failed to save deadline for user %s: %v", userID, err)
		// Keep the draft so the user retries with one tap instead of
		// retyping the whole thing.
		return Reply{Text: msgSaveFailed, Choices: models.Categories}
	}

	delete(m.sessions, userID)
	return Reply{Text: fmt.Sprintf(
		"✅ Deadline added successfully!\n\nTitle: %s\nDue Date: %s\nCategory: %s",
		d.Title, d.Date, strings.ToUpper(string(cat)))}
}
