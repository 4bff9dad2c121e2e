package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/SanyamDa/DeadelinesBot/internal/models"
	"github.com/SanyamDa/DeadelinesBot/internal/query"
	"github.com/SanyamDa/DeadelinesBot/internal/session"
	"github.com/SanyamDa/DeadelinesBot/internal/storage"

	maxbot "github.com/max-messenger/max-bot-api-client-go"
	"github.com/max-messenger/max-bot-api-client-go/schemes"
)

// Callback payload prefixes. view_* shows a listing, category_* completes
// the add dialog.
const (
	payloadViewPrefix     = "view_"
	payloadCategoryPrefix = "category_"
)

// Handler routes incoming updates to the dialog manager and query engine
// and renders their answers back through the messenger API.
type Handler struct {
	users   *storage.UserRegistry
	dialogs *session.Manager
	engine  *query.Engine
}

// New wires the handler to the shared deadline store.
func New(store *storage.FileStore) *Handler {
	return &Handler{
		users:   storage.NewUserRegistry(),
		dialogs: session.NewManager(store),
		engine:  query.NewEngine(store),
	}
}

// HandleUpdate dispatches one incoming update.
func (h *Handler) HandleUpdate(ctx context.Context, api *maxbot.Api, update interface{}) {
	switch upd := update.(type) {
	case *schemes.MessageCreatedUpdate:
		h.handleMessage(ctx, api, upd)
	case *schemes.MessageCallbackUpdate:
		h.handleCallback(ctx, api, upd)
	}
}

func (h *Handler) handleMessage(ctx context.Context, api *maxbot.Api, upd *schemes.MessageCreatedUpdate) {
	chatID := int64(upd.Message.Recipient.ChatId)
	text := strings.TrimSpace(upd.Message.Body.Text)
	userID := fmt.Sprintf("%d", upd.Message.Sender.UserId)

	h.registerUser(upd.Message.Sender, userID)

	command, args := splitCommand(text)
	switch command {
	case "/start":
		h.send(ctx, api, chatID, welcomeMessage(upd.Message.Sender.FirstName))
	case "/help":
		h.send(ctx, api, chatID, helpMessage)
	case "/add":
		h.sendReply(ctx, api, chatID, h.dialogs.StartAdd(userID))
	case "/view":
		h.handleView(ctx, api, chatID, args)
	default:
		if command != "" {
			// Unknown slash command; point at the real ones.
			h.send(ctx, api, chatID, "🤔 I don't know that command. Type /help to see what I can do.")
			return
		}
		h.sendReply(ctx, api, chatID, h.dialogs.HandleText(userID, text))
	}
}

func (h *Handler) handleCallback(ctx context.Context, api *maxbot.Api, upd *schemes.MessageCallbackUpdate) {
	userID := fmt.Sprintf("%d", upd.Callback.GetUserID())
	chatID := upd.Callback.GetChatID()

	payload := upd.Callback.Payload
	switch {
	case strings.HasPrefix(payload, payloadViewPrefix):
		scope := strings.TrimPrefix(payload, payloadViewPrefix)
		h.send(ctx, api, chatID, h.renderView(scope))
	case strings.HasPrefix(payload, payloadCategoryPrefix):
		choice := strings.TrimPrefix(payload, payloadCategoryPrefix)
		h.sendReply(ctx, api, chatID, h.dialogs.SelectCategory(userID, choice))
	}
}

// handleView answers "/view [scope]". With no scope it offers the category
// picker instead of guessing.
func (h *Handler) handleView(ctx context.Context, api *maxbot.Api, chatID int64, args string) {
	scope := strings.ToLower(strings.TrimSpace(args))
	if scope == "" {
		msg := maxbot.NewMessage().SetChat(chatID).SetText("📋 Select a category to view deadlines:")
		msg.AddKeyboard(categoryKeyboard(api, payloadViewPrefix, true))
		if _, err := api.Messages.Send(ctx, msg); err != nil {
			log.Printf("❌ Error sending message: %v", err)
		}
		return
	}
	h.send(ctx, api, chatID, h.renderView(scope))
}

// renderView builds the listing text for a scope.
func (h *Handler) renderView(scope string) string {
	results, err := h.engine.Query(scope)
	if err != nil {
		return invalidCategoryMessage(scope)
	}
	if len(results) == 0 {
		where := fmt.Sprintf("the '%s' category", scope)
		if scope == models.ScopeAll {
			where = "any category"
		}
		return fmt.Sprintf("📭 No deadlines found in %s.", where)
	}
	return formatDeadlines(scope, results)
}

func (h *Handler) registerUser(sender schemes.User, userID string) {
	if existing := h.users.Get(userID); existing != nil {
		h.users.Touch(userID)
		return
	}
	h.users.Save(&models.User{
		ID:        userID,
		FirstName: sender.FirstName,
		Username:  sender.Username,
	})
	log.Printf("✅ New user registered: %s (%s)", sender.FirstName, userID)
}

func (h *Handler) send(ctx context.Context, api *maxbot.Api, chatID int64, text string) {
	if _, err := api.Messages.Send(ctx, maxbot.NewMessage().SetChat(chatID).SetText(text)); err != nil {
		log.Printf("❌ Error sending message: %v", err)
	}
}

// sendReply renders a dialog reply, attaching the category keyboard when
// the dialog offers choices.
func (h *Handler) sendReply(ctx context.Context, api *maxbot.Api, chatID int64, reply session.Reply) {
	msg := maxbot.NewMessage().SetChat(chatID).SetText(reply.Text)
	if len(reply.Choices) > 0 {
		msg.AddKeyboard(categoryKeyboard(api, payloadCategoryPrefix, false))
	}
	if _, err := api.Messages.Send(ctx, msg); err != nil {
		log.Printf("❌ Error sending message: %v", err)
	}
}

// categoryKeyboard lays out two categories per row, the layout users know
// from the original picker. withAll appends a full-width ALL row for view
// queries.
func categoryKeyboard(api *maxbot.Api, prefix string, withAll bool) *maxbot.Keyboard {
	kb := api.Messages.NewKeyboardBuilder()
	cats := models.Categories
	for i := 0; i < len(cats); i += 2 {
		row := kb.AddRow()
		row.AddCallback(strings.ToUpper(string(cats[i])), schemes.DEFAULT, prefix+string(cats[i]))
		if i+1 < len(cats) {
			row.AddCallback(strings.ToUpper(string(cats[i+1])), schemes.DEFAULT, prefix+string(cats[i+1]))
		}
	}
	if withAll {
		kb.AddRow().AddCallback("ALL DEADLINES", schemes.POSITIVE, prefix+models.ScopeAll)
	}
	return kb
}

// splitCommand separates a leading /command from its arguments. Non-command
// text comes back with an empty command.
func splitCommand(text string) (command, args string) {
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	fields := strings.SplitN(text, " ", 2)
	command = strings.ToLower(fields[0])
	if len(fields) == 2 {
		args = strings.TrimSpace(fields[1])
	}
	return command, args
}
