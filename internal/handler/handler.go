package handler

import (
	"context"

	"vocabot/internal/middleware"
	"vocabot/internal/service"
	"vocabot/internal/state"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	ctx      context.Context
	bot      *tele.Bot
	users    *service.UserService
	words    *service.WordService
	schedule *service.ScheduleService
	quiz     *service.QuizService
	state    *state.State
	logger   *zap.Logger
}

// NewHandler creates a new handler instance. ctx bounds every store call
// made while handling updates.
func NewHandler(
	ctx context.Context,
	bot *tele.Bot,
	users *service.UserService,
	words *service.WordService,
	schedule *service.ScheduleService,
	quiz *service.QuizService,
	st *state.State,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		ctx:      ctx,
		bot:      bot,
		users:    users,
		words:    words,
		schedule: schedule,
		quiz:     quiz,
		state:    st,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.Recover(h.logger), middleware.Logging(h.logger))

	// Registration is the only command open to everyone
	h.bot.Handle("/start", h.handleStart)

	registered := h.bot.Group()
	registered.Use(middleware.RegisteredOnly(h.users, h.logger))

	registered.Handle("/info", h.handleInfo)
	registered.Handle("/upload_info", h.handleUploadInfo)
	registered.Handle("/next_word", h.handleNextWord)
	registered.Handle("/reveal_last", h.handleReveal)
	registered.Handle("/show_words", h.handleShowWords)
	registered.Handle("/add_time", h.handleAddTime)
	registered.Handle("/delete_time", h.handleDeleteTime)
	registered.Handle("/add_words", h.handleAddWords)
	registered.Handle("/schedule", h.handleSchedule)

	// Text messages
	registered.Handle(tele.OnText, h.handleText)

	// Inline buttons
	registered.Handle(tele.OnCallback, h.handleCallback)
}

// PublishCommands sets the bot command menu shown by Telegram clients
func (h *Handler) PublishCommands() error {
	return h.bot.SetCommands(commands)
}

// sendFailure logs err and tells the user something went wrong
func (h *Handler) sendFailure(c tele.Context, msg string, err error) error {
	h.logger.Error(msg,
		zap.Int64("user_id", c.Sender().ID),
		zap.Error(err),
	)
	return c.Send(msgFailure)
}
