package handler

import (
	"fmt"
	"strings"

	"vocabot/internal/domain"
	"vocabot/internal/service"

	"github.com/samber/lo"
	tele "gopkg.in/telebot.v3"
)

const (
	msgGreeting       = "You was successfully registered!"
	msgKnownUser      = "I know you."
	msgFailure        = "Something went wrong. Please try again later."
	msgUploadPrompt   = "Send me your notes in next message\n (Type BREAK to abandon)"
	msgUploadAbandon  = "Upload abandoned"
	msgCorrect        = "Correct!"
	msgIncorrect      = "Incorrect, try again."
	msgNoWordsAdded   = "You haven't added any words yet"
	msgNothingPending = "Looks like there is no scheduled words for you yet, or you already answered one."
	msgNoWordsListed  = "No words uploaded yet"
	msgInvalidTime    = "Inconsistent time format, try to stick with hh:mm:ss"
	msgNoSchedule     = "You haven't schedule any questions yet"
	msgIdle           = "Type /next_word to get a word or /add_words to upload your notes"

	msgUploadInfo = "For uploading words it is enough to copy your stored\n" +
		"data here in the following format:\n\n" +
		"<some word> <definition>\n" +
		"<again word> <it's own definition>\n\n" +
		"For example:\n" +
		"To shiver трястись\n" +
		"To smart\n" +
		"Fraudulent мошеннический\n" +
		"To ride for 'вписаться за'\n" +
		"Preliminary предварительный\n" +
		"Aptly МЕТКО\n" +
		"Dukes up поднять кулаки\n\n" +
		"Bot will try to separate your note in a\n" +
		"list of <word>-<translation> and on scheduled\n" +
		"time will send you a message to ask you for translation\n\n" +
		"NOTE [0]: characters !?*'`_/ are skipped\n" +
		"NOTE [1]: currently supported languages: Russian, English\n" +
		"NOTE [2]: lines without translation (like the 2nd) are not saved\n" +
		"NOTE [3]: put every word with its translation on a separate line"
)

// commands is the bot menu, also used for /info
var commands = []tele.Command{
	{Text: "start", Description: "start fun"},
	{Text: "info", Description: "show full info on available commands"},
	{Text: "upload_info", Description: "detailed info about uploading words"},
	{Text: "next_word", Description: "force next word"},
	{Text: "reveal_last", Description: "show translation for the last word"},
	{Text: "show_words", Description: "show full list of uploaded words"},
	{Text: "add_time", Description: "add time to schedule 00:00:00 - 23:59:59"},
	{Text: "delete_time", Description: "remove time from schedule"},
	{Text: "add_words", Description: "add words"},
	{Text: "schedule", Description: "list your timetable for questions"},
}

func infoText() string {
	lines := lo.Map(commands, func(cmd tele.Command, _ int) string {
		return fmt.Sprintf("/%s - %s", cmd.Text, cmd.Description)
	})
	return strings.Join(lines, "\n")
}

func formatPair(w domain.WordPair) string {
	return fmt.Sprintf("%s - %s", w.Source, w.Target)
}

func formatWords(words []domain.WordPair) string {
	return strings.Join(lo.Map(words, func(w domain.WordPair, _ int) string {
		return formatPair(w)
	}), "\n")
}

func formatSchedule(times []domain.TimeOfDay) string {
	return strings.Join(lo.Map(times, func(t domain.TimeOfDay, _ int) string {
		return t.String()
	}), "\n")
}

func formatUpload(result service.UploadResult) string {
	var b strings.Builder

	b.WriteString("Processed words:\n")
	if len(result.Recognized) == 0 {
		b.WriteString("none\n")
	} else {
		b.WriteString(formatWords(result.Recognized))
		b.WriteString("\n")
	}

	if len(result.Unrecognized) > 0 {
		b.WriteString("\nUnprocessed words:\n")
		b.WriteString(strings.Join(lo.Map(result.Unrecognized, func(w domain.WordPair, _ int) string {
			return w.Source
		}), "\n"))
	}

	return strings.TrimRight(b.String(), "\n")
}
