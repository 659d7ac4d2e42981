package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"

	"github.com/selamlab/ethio-calendar-bot/internal/config"
	"github.com/selamlab/ethio-calendar-bot/internal/ethiopic"
	"github.com/selamlab/ethio-calendar-bot/internal/services"
	"github.com/selamlab/ethio-calendar-bot/internal/storage"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.Token == "" {
		logger.Fatal("TELEGRAM_TOKEN is not set")
	}

	// User tracking backend: Postgres when configured, local file otherwise.
	var store storage.UserStore
	var storageLabel string
	if cfg.DatabaseURL != "" {
		pg, err := storage.NewPostgresStore(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Fatalf("failed to open postgres storage: %v", err)
		}
		defer pg.Close()
		store = pg
		storageLabel = "PostgreSQL"
		logger.Info("user storage: postgres")
	} else {
		store = storage.NewJSONStore(cfg.UsersFile)
		storageLabel = fmt.Sprintf("Local (%s, ⚠️ not persistent)", cfg.UsersFile)
		logger.Warnf("DATABASE_URL not set, user tracking falls back to %s", cfg.UsersFile)
	}
	userService := services.NewUserService(store)

	b, err := bot.New(cfg.Token, bot.WithDefaultHandler(handleText))
	if err != nil {
		logger.Fatalf("failed to create bot: %v", err)
	}

	me, err := b.GetMe(context.Background())
	if err != nil {
		logger.Fatalf("failed to get bot info: %v", err)
	}
	logger.Infof("bot initialized as @%s", me.Username)

	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, func(ctx context.Context, b *bot.Bot, update *tgmodels.Update) {
		handleStart(ctx, b, update, userService)
	})
	b.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, func(ctx context.Context, b *bot.Bot, update *tgmodels.Update) {
		handleHelp(ctx, b, update)
	})
	b.RegisterHandler(bot.HandlerTypeMessageText, "/stats", bot.MatchTypePrefix, func(ctx context.Context, b *bot.Bot, update *tgmodels.Update) {
		handleStats(ctx, b, update, userService, cfg, storageLabel)
	})

	setBotCommands(b)
	startMetricsServer(cfg.MetricsAddr)

	logger.Info("bot started, press Ctrl+C to stop")
	b.Start(context.Background())
}

// handleStart resets the conversation and greets the user, recording them in
// the unique-user store.
func handleStart(ctx context.Context, b *bot.Bot, update *tgmodels.Update, userService *services.UserService) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	CommandUsageCounter.WithLabelValues("start").Inc()

	from := update.Message.From
	isNew, err := userService.Track(ctx, from.ID, from.Username, from.FirstName)
	if err == nil && isNew {
		if count, countErr := userService.Count(ctx); countErr == nil {
			WithComponent("users").Infof("new user %d (total: %d)", from.ID, count)
		}
	}

	resetSession(update.Message.Chat.ID, from.ID)
	sendMessage(ctx, b, update.Message.Chat.ID, text[langEnglish]["welcome"], langKeyboard)
}

// handleHelp sends the detailed help message, keeping the keyboard that
// matches the user's current state.
func handleHelp(ctx context.Context, b *bot.Bot, update *tgmodels.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	CommandUsageCounter.WithLabelValues("help").Inc()

	sess := getSession(update.Message.Chat.ID, update.Message.From.ID)
	lang := sess.Lang
	if lang == "" {
		lang = langEnglish
	}

	var keyboard *tgmodels.ReplyKeyboardMarkup
	switch {
	case sess.Mode != "":
		keyboard = waitingKeyboard
	case sess.Lang != "":
		keyboard = convertKeyboard
	default:
		keyboard = langKeyboard
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        text[lang]["help"],
		ParseMode:   tgmodels.ParseModeHTML,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		logger.Errorf("failed to send help: %v", err)
	}
}

// handleStats reports user statistics. Admin only.
func handleStats(ctx context.Context, b *bot.Bot, update *tgmodels.Update, userService *services.UserService, cfg *config.Config, storageLabel string) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	CommandUsageCounter.WithLabelValues("stats").Inc()

	sess := getSession(update.Message.Chat.ID, update.Message.From.ID)
	lang := sess.Lang
	if lang == "" {
		lang = langEnglish
	}

	if cfg.AdminUserID == 0 || update.Message.From.ID != cfg.AdminUserID {
		sendMessage(ctx, b, update.Message.Chat.ID, text[lang]["not_admin"], nil)
		return
	}

	count, err := userService.Count(ctx)
	if err != nil {
		sendMessage(ctx, b, update.Message.Chat.ID, fmt.Sprintf("failed to read statistics: %s", err), nil)
		return
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      fmt.Sprintf(text[lang]["stats"], count, update.Message.From.ID, storageLabel),
		ParseMode: tgmodels.ParseModeHTML,
	})
	if err != nil {
		logger.Errorf("failed to send stats: %v", err)
	}
}

// handleText is the single entry point for all non-command text. It routes
// by state: language not chosen, direction not chosen, awaiting a date.
// Every branch handles irrelevant input gracefully.
func handleText(ctx context.Context, b *bot.Bot, update *tgmodels.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	msg := strings.TrimSpace(update.Message.Text)
	if msg == "" || strings.HasPrefix(msg, "/") {
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID
	sess := getSession(chatID, userID)
	lang := sess.Lang
	if lang == "" {
		lang = langEnglish
	}

	// "Change Language" is accessible from any state.
	if strings.Contains(msg, "🌐") || strings.Contains(msg, "Change Language") || strings.Contains(msg, "ቋንቋ") {
		resetSession(chatID, userID)
		sendMessage(ctx, b, chatID, text[langEnglish]["change_language"], langKeyboard)
		return
	}

	// STATE 1: no language chosen yet.
	if sess.Lang == "" {
		switch {
		case strings.Contains(msg, "English"):
			sess.Lang = langEnglish
		case strings.Contains(msg, "አማርኛ"):
			sess.Lang = langAmharic
		default:
			sendMessage(ctx, b, chatID, text[langEnglish]["unrecognised_lang"], langKeyboard)
			return
		}
		sendMessage(ctx, b, chatID, text[sess.Lang]["choose"], convertKeyboard)
		return
	}

	// Switching conversion direction is always allowed from here on.
	if strings.Contains(msg, "Ethiopian →") {
		sess.Mode = modeEthToGreg
		sendMessage(ctx, b, chatID, text[lang]["ask_e"], waitingKeyboard)
		return
	}
	if strings.Contains(msg, "Gregorian →") {
		sess.Mode = modeGregToEth
		sendMessage(ctx, b, chatID, text[lang]["ask_g"], waitingKeyboard)
		return
	}

	// STATE 2: language chosen, no conversion direction yet.
	if sess.Mode == "" {
		sendMessage(ctx, b, chatID, text[lang]["unrecognised_mode"], convertKeyboard)
		return
	}

	// STATE 3: awaiting a date.
	example := exampleDate[sess.Mode]

	// Catch completely non-date-looking input before even trying to parse.
	if !looksLikeDate(msg) {
		sendMessage(ctx, b, chatID, fmt.Sprintf(text[lang]["unrecognised_date"], example), waitingKeyboard)
		return
	}

	year, month, day, err := parseSlashDate(msg)
	if err != nil {
		sendMessage(ctx, b, chatID, fmt.Sprintf(text[lang]["format_error"], example), waitingKeyboard)
		return
	}

	if sess.Mode == modeEthToGreg {
		g, err := ethiopic.ToGregorian(year, month, day)
		if err != nil {
			ConversionCounter.WithLabelValues("e2g", "invalid").Inc()
			sendMessage(ctx, b, chatID, fmt.Sprintf(text[lang]["conversion_error"], err.Error()), waitingKeyboard)
			return
		}
		ConversionCounter.WithLabelValues("e2g", "ok").Inc()
		sendMessage(ctx, b, chatID, fmt.Sprintf(text[lang]["e2g"],
			formatEthiopian(year, month, day),
			formatGregorian(g.Year, g.Month, g.Day),
		), convertKeyboard)
	} else {
		e, err := ethiopic.ToEthiopian(year, month, day)
		if err != nil {
			ConversionCounter.WithLabelValues("g2e", "invalid").Inc()
			sendMessage(ctx, b, chatID, fmt.Sprintf(text[lang]["conversion_error"], err.Error()), waitingKeyboard)
			return
		}
		ConversionCounter.WithLabelValues("g2e", "ok").Inc()
		sendMessage(ctx, b, chatID, fmt.Sprintf(text[lang]["g2e"],
			formatGregorian(year, month, day),
			formatEthiopian(e.Year, e.Month, e.Day),
		), convertKeyboard)
	}

	// Keep the language, clear the direction for the next conversion.
	sess.Mode = ""
}

func sendMessage(ctx context.Context, b *bot.Bot, chatID int64, msg string, keyboard tgmodels.ReplyMarkup) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        msg,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		logger.Errorf("failed to send message: %v", err)
	}
}

func setBotCommands(b *bot.Bot) {
	commands := []tgmodels.BotCommand{
		{Command: "start", Description: "Restart the bot"},
		{Command: "help", Description: "How to use the converter"},
	}
	_, err := b.SetMyCommands(context.Background(), &bot.SetMyCommandsParams{
		Commands: commands,
	})
	if err != nil {
		logger.Errorf("failed to set bot commands: %v", err)
	}
}
