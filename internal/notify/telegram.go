// Package notify sends the run summary to a Telegram chat.
package notify

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Summary is the count data a run hands to the notifier. The core never
// builds message text, only these numbers.
type Summary struct {
	Total     int
	ByFamily  map[string]int
	CSVPath   string
	ScannedAt time.Time

	//NextScanHours is 0 for one-shot runs; scheduled runs set it so the
	//message can say when the next scan fires
	NextScanHours int
}

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &TelegramNotifier{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (t *TelegramNotifier) SendSummary(s Summary) error {
	return t.send(FormatSummary(s))
}

func (t *TelegramNotifier) SendError(errReq error) error {
	return t.send(FormatError(errReq))
}

func (t *TelegramNotifier) send(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// FormatError renders the failure notification sent when a scan aborts.
func FormatError(err error) string {
	return fmt.Sprintf("⚠️ <b>Job Scan Error</b>:\n%v", err)
}

// FormatSummary renders the scan report. Families are sorted by name so
// identical runs produce identical messages.
func FormatSummary(s Summary) string {
	var b strings.Builder

	b.WriteString("📊 <b>Job Scan Report</b>\n\n")
	fmt.Fprintf(&b, "🕐 Scan Time: %s\n", s.ScannedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "✅ Total Jobs Found: %d\n\n", s.Total)

	families := make([]string, 0, len(s.ByFamily))
	for name := range s.ByFamily {
		families = append(families, name)
	}
	sort.Strings(families)
	for _, name := range families {
		fmt.Fprintf(&b, "  • %s: %d\n", name, s.ByFamily[name])
	}
	if len(families) > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "📁 CSV File: %s\n", s.CSVPath)

	if s.NextScanHours > 0 {
		fmt.Fprintf(&b, "\nNext scan scheduled in %d hours.", s.NextScanHours)
	}

	return b.String()
}
