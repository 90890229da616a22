// internal/tui/app_test.go
package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardwallet/internal/service"
	"cardwallet/internal/store"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, m AppModel, keys ...string) AppModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(AppModel)
		require.True(t, ok, "Update must return AppModel")
	}
	return m
}

func newTestModel(t *testing.T, opts ...store.Option) AppModel {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cards := service.NewCardService(store.New(opts...), logger)
	now := time.Date(2024, time.June, 8, 23, 45, 0, 0, time.UTC)
	dashboard := service.NewDashboardService(cards, "Hasan", now)
	return NewAppModel(context.Background(), cards, dashboard)
}

func newDemoModel(t *testing.T) AppModel {
	return newTestModel(t, store.WithCards(store.DemoCards(nil)...))
}

func TestAppModelTabs(t *testing.T) {
	m := newDemoModel(t)
	assert.Equal(t, TabHome, m.Tab())

	view := m.View()
	assert.Contains(t, view, "Merhaba, Hasan")
	assert.Contains(t, view, "₺12.500,75")
	assert.Contains(t, view, "Market Alışverişi")
	assert.Contains(t, view, "-₺156,50")
	assert.Contains(t, view, "•••• •••• •••• 4242")

	m = press(t, m, "tab")
	assert.Equal(t, TabCards, m.Tab())
	assert.Contains(t, m.View(), "Kartlarım · 2 Kart")

	m = press(t, m, "tab")
	assert.Equal(t, TabHome, m.Tab(), "tab wraps around")

	m = press(t, m, "shift+tab")
	assert.Equal(t, TabCards, m.Tab())
}

func TestAppModelHomeShowsNoDefault(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "Varsayılan kart yok")
}

func TestAppModelCursor(t *testing.T) {
	m := press(t, newDemoModel(t), "tab")
	assert.Equal(t, 0, m.Cursor())

	m = press(t, m, "down")
	assert.Equal(t, 1, m.Cursor())

	m = press(t, m, "j", "down")
	assert.Equal(t, 1, m.Cursor(), "cursor stops at the last card")

	m = press(t, m, "k", "up")
	assert.Equal(t, 0, m.Cursor(), "cursor stops at the first card")
}

func TestAppModelCardActions(t *testing.T) {
	t.Run("EnterTogglesExpanded", func(t *testing.T) {
		m := press(t, newDemoModel(t), "tab", "enter")
		first := m.Snapshot().Cards[0]
		assert.Equal(t, first.ID, m.Snapshot().ExpandedCardID)
		assert.Contains(t, m.View(), "Kart Durumu")
		assert.Contains(t, m.View(), "CARD HOLDER")

		m = press(t, m, "enter")
		assert.Empty(t, m.Snapshot().ExpandedCardID)
		assert.NotContains(t, m.View(), "Kart Durumu")
	})

	t.Run("SpaceSelects", func(t *testing.T) {
		m := press(t, newDemoModel(t), "tab", "down", " ")
		assert.Equal(t, m.Snapshot().Cards[1].ID, m.Snapshot().SelectedCardID)

		m = press(t, m, " ")
		assert.Equal(t, m.Snapshot().Cards[1].ID, m.Snapshot().SelectedCardID, "selecting again keeps the selection")
	})

	t.Run("SetDefault", func(t *testing.T) {
		m := press(t, newDemoModel(t), "tab", "down", "d")
		cards := m.Snapshot().Cards
		assert.False(t, cards[0].IsDefault)
		assert.True(t, cards[1].IsDefault)
		assert.Contains(t, m.View(), "Varsayılan kart: •••• •••• •••• 8372")
	})

	t.Run("ToggleActive", func(t *testing.T) {
		m := press(t, newDemoModel(t), "tab", "f")
		assert.False(t, m.Snapshot().Cards[0].IsActive)
		assert.Equal(t, 1, m.Snapshot().Stats.Disabled)
		assert.Contains(t, m.View(), "Deaktif Kart")

		m = press(t, m, "f")
		assert.True(t, m.Snapshot().Cards[0].IsActive)
		assert.Equal(t, 0, m.Snapshot().Stats.Disabled)
	})

	t.Run("DeleteClampsCursor", func(t *testing.T) {
		m := press(t, newDemoModel(t), "tab", "down", "x")
		require.Len(t, m.Snapshot().Cards, 1)
		assert.Equal(t, 0, m.Cursor())
		assert.Contains(t, m.View(), "Kartlarım · 1 Kart")

		m = press(t, m, "x")
		assert.Empty(t, m.Snapshot().Cards)
		assert.Contains(t, m.View(), "Henüz kart yok")

		m = press(t, m, "enter", " ", "d", "f", "x", "down")
		assert.Empty(t, m.Snapshot().Cards, "actions on an empty list do nothing")
	})

	t.Run("ActionsIgnoredOnHome", func(t *testing.T) {
		m := press(t, newDemoModel(t), "x", "enter")
		assert.Len(t, m.Snapshot().Cards, 2)
		assert.Empty(t, m.Snapshot().ExpandedCardID)
	})
}

func TestAppModelAddCard(t *testing.T) {
	t.Run("ValidForm", func(t *testing.T) {
		m := press(t, newDemoModel(t), "a")
		require.True(t, m.Adding())
		assert.Equal(t, TabCards, m.Tab())
		assert.Contains(t, m.View(), "Yeni Kart")

		m = press(t, m,
			"1111222233334444", "tab",
			"jane roe", "tab",
			"03", "tab",
			"29", "tab",
			"123", "enter")

		assert.False(t, m.Adding())
		cards := m.Snapshot().Cards
		require.Len(t, cards, 3)
		added := cards[2]
		assert.Equal(t, "4444", added.LastFourDigits)
		assert.Equal(t, "JANE ROE", added.CardholderName)
		assert.True(t, added.IsActive)
		assert.False(t, added.IsDefault)
		assert.Equal(t, 2, m.Cursor(), "cursor moves to the new card")
		assert.Contains(t, m.View(), "Kart eklendi: •••• •••• •••• 4444")
	})

	t.Run("InvalidFormStaysOpen", func(t *testing.T) {
		m := press(t, newDemoModel(t), "a", "4242", "enter")
		assert.True(t, m.Adding())
		assert.Contains(t, m.View(), "card number must be 16 digits")
		assert.Len(t, m.Snapshot().Cards, 2)
	})

	t.Run("EscCancels", func(t *testing.T) {
		m := press(t, newDemoModel(t), "a", "1111", "esc")
		assert.False(t, m.Adding())
		assert.Len(t, m.Snapshot().Cards, 2)
	})

	t.Run("QTypesIntoForm", func(t *testing.T) {
		m := press(t, newDemoModel(t), "a", "tab")
		m = press(t, m, "q")
		assert.True(t, m.Adding())
		assert.Equal(t, "q", m.form.Form().CardholderName)
	})
}

func TestAppModelQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			_, cmd := newDemoModel(t).Update(keyMsg(k))
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestAppModelWindowSize(t *testing.T) {
	next, cmd := newDemoModel(t).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)
	m := next.(AppModel)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestFormatTime(t *testing.T) {
	at := time.Date(2024, time.June, 8, 23, 45, 0, 0, time.Local)
	assert.Equal(t, "8 Haziran, 23:45", formatTime(at))
}
