package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mindguard/internal/models"
	"mindguard/internal/mood"
	"mindguard/internal/sentiment"
)

const (
	entryTimeLayout   = "Jan 2, 03:04 PM"
	journalTimeLayout = "Jan 2, 2006, 03:04 PM"
	chartHalfWidth    = 15
	maxKeyWords       = 10
)

type resource struct {
	title, blurb string
}

var library = []resource{
	{"Understanding Your Emotions", "Learn how to identify and process your emotional responses."},
	{"Mental Wellness Practices", "Daily habits to improve your emotional resilience."},
	{"Mindfulness Techniques", "Simple exercises to stay present and reduce anxiety."},
	{"Digital Wellness Guide", "How to have a healthier relationship with social media."},
}

var consentItems = []string{
	"Emotion tracking and analysis",
	"Personalized well-being suggestions",
	"Safe content filtering",
	"Usage analytics to improve the app",
}

var privacyItems = []string{
	"Allow anonymous data collection",
	"Store data locally only",
	"Send helpful notifications",
}

func (m Model) View() string {
	var body string
	switch m.screen {
	case ScreenWelcome:
		body = m.viewWelcome()
	case ScreenConsent:
		body = m.viewConsent()
	case ScreenDashboard:
		body = m.viewDashboard()
	case ScreenResult:
		body = m.viewResult()
	case ScreenHistory:
		body = m.viewHistory()
	case ScreenJournal:
		body = m.viewJournal()
	case ScreenLibrary:
		body = m.viewLibrary()
	case ScreenSettings:
		body = m.viewSettings()
	default:
		body = fmt.Sprintf("unknown screen %d", int(m.screen))
	}

	parts := []string{m.styles.Card.Render(body)}
	if m.err != nil {
		parts = append(parts, m.styles.Error.Render("Error: "+m.err.Error()))
	}
	if m.status != "" {
		parts = append(parts, m.styles.Status.Render(m.status))
	}
	if m.screen.hasNav() {
		parts = append(parts, m.viewNav())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewNav() string {
	tabs := make([]string, 0, len(navScreens))
	for _, s := range navScreens {
		style := m.styles.Nav
		if s == m.screen {
			style = m.styles.NavOn
		}
		tabs = append(tabs, style.Render(navLabels[s]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + m.styles.Muted.Render("  tab/shift+tab to switch, ctrl+c to quit")
}

func (m Model) viewWelcome() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Welcome to MindGuard"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("Your emotionally intelligent social companion"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Body.Render("Press enter to get started, q to quit."))
	return sb.String()
}

func (m Model) viewConsent() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Consent & Preferences"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("We respect your privacy. Choose what you'd like to share."))
	sb.WriteString("\n\n")
	for _, item := range consentItems {
		sb.WriteString("[x] " + item + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Body.Render("enter: continue   b: back"))
	return sb.String()
}

func (m Model) viewDashboard() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Your Emotional Dashboard"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("Enter content you'd like to analyze emotionally:"))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	if m.pending {
		sb.WriteString(m.spinner.View() + " Analyzing...")
	} else {
		sb.WriteString(m.styles.Muted.Render("ctrl+s: Analyze Emotion"))
	}

	recent := m.session.RecentEntries(3)
	if len(recent) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Header.Render("Recent Analyses"))
		// oldest of the three first, like the log itself
		for i := len(recent) - 1; i >= 0; i-- {
			e := recent[i]
			sb.WriteString(fmt.Sprintf("\n%-44s %s %s",
				truncate(e.Text, 40),
				MoodStyle(mood.Color(e.Score)).Render(mood.Emoji(e.Score)),
				m.styles.Muted.Render(e.CreatedAt.Format(entryTimeLayout))))
		}
	}
	return sb.String()
}

func (m Model) viewResult() string {
	if m.last == nil {
		return m.styles.Muted.Render("Nothing analyzed yet.")
	}
	res := m.last
	style := MoodStyle(res.Mood.ColorTag)

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Emotional Analysis"))
	sb.WriteString("\n")
	sb.WriteString(style.Bold(true).Render(res.Mood.Label) + "  " + res.Mood.Emoji)
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("Score: %d", res.Sentiment.Score)))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Callout.Render(m.styles.Header.Render("Suggestion") + "\n" + res.Suggestion))

	if len(res.Sentiment.Words) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Header.Render("Key Words Analyzed"))
		sb.WriteString("\n")
		sb.WriteString(m.renderWords(res.Sentiment))
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render("a: Analyze Another   h: View History"))
	return sb.String()
}

func (m Model) renderWords(res sentiment.Result) string {
	words := res.Words
	if len(words) > maxKeyWords {
		words = words[:maxKeyWords]
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		switch {
		case slices.Contains(res.Positive, w):
			out = append(out, m.styles.Positive.Render(w))
		case slices.Contains(res.Negative, w):
			out = append(out, m.styles.Negative.Render(w))
		default:
			out = append(out, m.styles.Plain.Render(w))
		}
	}
	return strings.Join(out, " ")
}

func (m Model) viewHistory() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Your Emotion History"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Header.Render("Average Mood Score"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Bar.Render(renderChart(m.session.History(), chartHalfWidth)))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Header.Render("Recent Analysis History"))

	entries := m.session.RecentEntries(0)
	if len(entries) == 0 {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("No analysis history yet"))
		return sb.String()
	}
	for _, e := range entries {
		style := MoodStyle(mood.Color(e.Score))
		sb.WriteString("\n\n")
		sb.WriteString(style.Render(mood.Label(e.Score)+" "+mood.Emoji(e.Score)) + "  " +
			m.styles.Muted.Render(e.CreatedAt.Format(entryTimeLayout)))
		sb.WriteString("\n")
		sb.WriteString(truncate(e.Text, 100))
	}
	return sb.String()
}

func (m Model) viewJournal() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Emotional Journal"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Callout.Render(m.styles.Header.Render("Today's Prompt") + "\n" + m.prompt))
	sb.WriteString("\n\n")
	sb.WriteString(m.journal.View())
	sb.WriteString("\n")
	if m.pending {
		sb.WriteString(m.spinner.View() + " Saving...")
	} else {
		sb.WriteString(m.styles.Muted.Render("ctrl+s: Save Entry"))
	}

	entries := m.session.Journal()
	if len(entries) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Header.Render("Previous Entries"))
		for _, e := range entries {
			sb.WriteString("\n\n")
			sb.WriteString(MoodStyle(mood.Color(e.SentimentScore)).Render(mood.Emoji(e.SentimentScore)) + "  " +
				m.styles.Muted.Render(e.CreatedAt.Format(journalTimeLayout)))
			sb.WriteString("\n")
			sb.WriteString(truncate(e.Text, 100))
		}
	}
	return sb.String()
}

func (m Model) viewLibrary() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Resource Library"))
	for _, r := range library {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Callout.Render(m.styles.Header.Render(r.title) + "\n" + r.blurb))
	}
	return sb.String()
}

func (m Model) viewSettings() string {
	settings := m.session.Settings()
	check := func(on bool) string {
		if on {
			return "[on] "
		}
		return "[off]"
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Settings"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s Notifications  (n)\n", check(settings.Notifications)))
	sb.WriteString(fmt.Sprintf("%s Dark Mode      (d)\n", check(settings.Theme == models.ThemeDark)))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Header.Render("Privacy Options"))
	sb.WriteString("\n")
	for _, item := range privacyItems {
		sb.WriteString("[x] " + item + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Header.Render("Account"))
	sb.WriteString("\n")
	if m.pending {
		sb.WriteString(m.spinner.View() + " Exporting...")
	} else {
		sb.WriteString("Export My Data (e)")
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("Delete Account"))
	return sb.String()
}
