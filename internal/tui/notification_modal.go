package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/tubenotes/internal/core/logging"
	"github.com/hay-kot/tubenotes/internal/core/notify"
	"github.com/hay-kot/tubenotes/internal/core/styles"
	"github.com/hay-kot/tubenotes/internal/tui/components"
	tuinotify "github.com/hay-kot/tubenotes/internal/tui/notify"
)

const (
	notifyModalWidthPct  = 65
	notifyModalMinWidth  = 60
	notifyModalMaxHeight = 30
	notifyModalMargin    = 4
	notifyModalChrome    = 6 // title + divider + help + spacing
)

// NotificationModal displays a scrollable history of notifications.
type NotificationModal struct {
	bus      *tuinotify.Bus
	viewport viewport.Model
	count    int64
}

// NewNotificationModal creates a modal showing the bus's notification history.
func NewNotificationModal(bus *tuinotify.Bus, width, height int) *NotificationModal {
	modalWidth := calcNotificationModalWidth(width)
	modalHeight := min(height-notifyModalMargin, notifyModalMaxHeight)
	contentHeight := max(modalHeight-notifyModalChrome, 1)

	vp := viewport.New(
		viewport.WithWidth(max(modalWidth-4, 1)), // account for modal padding
		viewport.WithHeight(contentHeight),
	)

	m := &NotificationModal{
		bus:      bus,
		viewport: vp,
	}

	m.refreshContent()
	return m
}

func (m *NotificationModal) refreshContent() {
	m.count = 0
	if m.bus == nil {
		m.viewport.SetContent(styles.TextMutedStyle.Render("No notifications"))
		return
	}

	history, err := m.bus.History(context.Background())
	if err != nil {
		log := logging.Component("tui")
		log.Error().Err(err).Msg("failed to load notification history")
		m.viewport.SetContent(styles.TextErrorStyle.Render(fmt.Sprintf("failed to load notifications: %v", err)))
		return
	}

	if len(history) == 0 {
		m.viewport.SetContent(styles.TextMutedStyle.Render("No notifications"))
		return
	}

	count, err := m.bus.Count(context.Background())
	if err != nil {
		log := logging.Component("tui")
		log.Warn().Err(err).Msg("failed to count notifications")
		count = int64(len(history))
	}
	m.count = count

	var b strings.Builder
	for i, n := range history {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(formatNotification(n))
	}

	m.viewport.SetContent(b.String())
}

func formatNotification(n notify.Notification) string {
	ts := styles.TextMutedStyle.Render(n.CreatedAt.Format("15:04:05"))

	var icon string
	var msgStyle lipgloss.Style
	switch n.Level {
	case notify.LevelError:
		icon = styles.IconNotifyError
		msgStyle = styles.TextErrorStyle
	case notify.LevelWarning:
		icon = styles.IconNotifyWarning
		msgStyle = styles.TextWarningStyle
	default:
		icon = styles.IconNotifyInfo
		msgStyle = styles.TextPrimaryStyle
	}

	line := fmt.Sprintf("%s %s %s", ts, icon, msgStyle.Render(n.Message))
	if n.VideoRef != "" {
		line += styles.TextMutedStyle.Render(" [" + n.VideoRef + "]")
	}
	return line
}

// ScrollUp scrolls the viewport up.
func (m *NotificationModal) ScrollUp() {
	m.viewport.ScrollUp(1)
}

// ScrollDown scrolls the viewport down.
func (m *NotificationModal) ScrollDown() {
	m.viewport.ScrollDown(1)
}

// Clear deletes all notifications and refreshes the view.
func (m *NotificationModal) Clear() error {
	if m.bus == nil {
		return nil
	}
	if err := m.bus.Clear(context.Background()); err != nil {
		return err
	}
	m.refreshContent()
	return nil
}

// Overlay renders the notification modal centered over the background.
func (m *NotificationModal) Overlay(background string, width, height int) string {
	modalWidth := calcNotificationModalWidth(width)
	modalHeight := max(min(height-notifyModalMargin, notifyModalMaxHeight), notifyModalChrome)

	scrollInfo := ""
	if m.viewport.TotalLineCount() > m.viewport.VisibleLineCount() {
		scrollInfo = styles.TextMutedStyle.Render(
			fmt.Sprintf(" (%.0f%%)", m.viewport.ScrollPercent()*100),
		)
	}

	title := "Notifications"
	if m.count > 0 {
		title = fmt.Sprintf("Notifications (%d)", m.count)
	}

	divider := styles.TextSurfaceStyle.Render(strings.Repeat("─", max(modalWidth-6, 1)))
	modalContent := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(title+scrollInfo),
		divider,
		m.viewport.View(),
		styles.ModalHelpStyle.Render("[j/k] scroll  [D] clear all  [esc] close"),
	)

	modal := styles.ModalStyle.
		Width(modalWidth).
		Height(modalHeight).
		Render(modalContent)

	return components.Center(background, modal, width, height)
}

func calcNotificationModalWidth(termWidth int) int {
	available := max(termWidth-notifyModalMargin, 1)
	target := termWidth * notifyModalWidthPct / 100
	return min(max(target, notifyModalMinWidth), available)
}
