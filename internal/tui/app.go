// internal/tui/app.go
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cardwallet/internal/domain"
	"cardwallet/internal/service"
	"cardwallet/internal/store"
)

// Tab identifies a top-level screen.
type Tab int

const (
	TabHome Tab = iota
	TabCards
)

var tabNames = []string{"Ana Sayfa", "Kartlarım"}

var monthNames = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// AppModel is the root Bubble Tea model. All card state lives behind the
// card service; the model only keeps the cursor and screen state.
type AppModel struct {
	ctx       context.Context
	cards     service.CardService
	dashboard service.DashboardService

	tab    Tab
	cursor int
	snap   store.Snapshot
	home   *domain.Dashboard
	err    error
	status string

	adding bool
	form   AddCardFormModel

	width  int
	height int
}

// NewAppModel creates the root model and loads the initial card state.
func NewAppModel(ctx context.Context, cards service.CardService, dashboard service.DashboardService) AppModel {
	m := AppModel{
		ctx:       ctx,
		cards:     cards,
		dashboard: dashboard,
		form:      NewAddCardFormModel(),
	}
	m.apply(cards.Snapshot(ctx))
	return m
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Tab returns the active screen.
func (m AppModel) Tab() Tab {
	return m.tab
}

// Cursor returns the index of the highlighted card row.
func (m AppModel) Cursor() int {
	return m.cursor
}

// Adding reports whether the add-card form is open.
func (m AppModel) Adding() bool {
	return m.adding
}

// Snapshot returns the card state the model last rendered.
func (m AppModel) Snapshot() store.Snapshot {
	return m.snap
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.adding {
			return m.updateForm(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m AppModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "right", "l":
		m.tab = (m.tab + 1) % Tab(len(tabNames))
		return m.refresh(), nil
	case "shift+tab", "left", "h":
		m.tab = (m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		return m.refresh(), nil
	case "a":
		m.tab = TabCards
		m.adding = true
		m.form = NewAddCardFormModel()
		m.status = ""
		return m, nil
	}

	if m.tab != TabCards {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.snap.Cards)-1 {
			m.cursor++
		}
	}

	card, ok := m.current()
	if !ok {
		return m, nil
	}

	switch msg.String() {
	case "enter":
		m.apply(m.cards.ToggleExpanded(m.ctx, card.ID))
	case " ":
		m.apply(m.cards.SelectCard(m.ctx, card.ID))
	case "d":
		m.apply(m.cards.SetDefaultCard(m.ctx, card.ID))
		m.status = "Varsayılan kart: " + card.MaskedNumber
	case "f":
		m.apply(m.cards.SetCardActive(m.ctx, card.ID, !card.IsActive))
		if card.IsActive {
			m.status = "Kart deaktif edildi: " + card.MaskedNumber
		} else {
			m.status = "Kart aktif edildi: " + card.MaskedNumber
		}
	case "x":
		m.apply(m.cards.DeleteCard(m.ctx, card.ID))
		m.status = "Kart silindi: " + card.MaskedNumber
	}
	return m, nil
}

func (m AppModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		return m, nil
	case "enter":
		card, err := m.cards.AddCard(m.ctx, m.form.Form())
		if err != nil {
			m.form.SetError(err.Error())
			return m, nil
		}
		m.adding = false
		m.apply(m.cards.Snapshot(m.ctx))
		m.cursor = len(m.snap.Cards) - 1
		m.status = "Kart eklendi: " + card.MaskedNumber
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// apply stores snap and keeps the cursor on a valid row.
func (m *AppModel) apply(snap store.Snapshot) {
	m.snap = snap
	if m.cursor >= len(snap.Cards) {
		m.cursor = len(snap.Cards) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// refresh reloads whatever the active tab renders.
func (m AppModel) refresh() AppModel {
	m.apply(m.cards.Snapshot(m.ctx))
	if m.tab == TabHome {
		m.home, m.err = m.dashboard.GetDashboard(m.ctx)
	}
	return m
}

func (m AppModel) current() (domain.Card, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Cards) {
		return domain.Card{}, false
	}
	return m.snap.Cards[m.cursor], true
}

// View implements tea.Model.
func (m AppModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch {
	case m.adding:
		b.WriteString(m.form.View())
	case m.tab == TabHome:
		b.WriteString(m.renderHome())
	default:
		b.WriteString(m.renderCards())
	}

	if m.status != "" && !m.adding {
		b.WriteString("\n")
		b.WriteString(SubtitleStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.helpLine()))
	return b.String()
}

func (m AppModel) renderTabs() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs[i] = ActiveTabStyle.Render(name)
		} else {
			tabs[i] = InactiveTabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m AppModel) renderHome() string {
	home := m.home
	if home == nil {
		var err error
		home, err = m.dashboard.GetDashboard(m.ctx)
		if err != nil {
			return ErrorStyle.Render("Özet yüklenemedi: " + err.Error())
		}
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Merhaba, " + home.User.Name))
	b.WriteString("\n\n")

	wallet := home.Wallet
	balance := LabelStyle.Render("Toplam Bakiye") + ValueStyle.Render(domain.FormatTRY(wallet.Balance)) + "\n" +
		LabelStyle.Render("Gelir") + ActiveStyle.Render(domain.FormatTRY(wallet.MonthlyIncome)) + "\n" +
		LabelStyle.Render("Gider") + DisabledStyle.Render(domain.FormatTRY(wallet.MonthlyExpense))
	b.WriteString(PanelStyle.Render(balance))
	b.WriteString("\n\n")

	b.WriteString(SubtitleStyle.Render("Varsayılan Kart"))
	b.WriteString("\n")
	if home.DefaultCard != nil {
		b.WriteString(renderCardFace(*home.DefaultCard))
	} else {
		b.WriteString(MutedStyle.Render("Varsayılan kart yok"))
	}
	b.WriteString("\n\n")

	b.WriteString(SubtitleStyle.Render("Son İşlemler"))
	b.WriteString("\n")
	for _, tx := range home.RecentTransactions {
		amount := domain.FormatTRY(tx.Amount)
		style := ActiveStyle
		if tx.Type == domain.TransactionTypeExpense {
			style = DisabledStyle
		}
		fmt.Fprintf(&b, "%s  %s  %s\n",
			RowStyle.Render(tx.Title),
			MutedStyle.Render(formatTime(tx.TransactionTime)),
			style.Render(amount))
	}
	return b.String()
}

func (m AppModel) renderCards() string {
	snap := m.snap
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Kartlarım · %d Kart", snap.Stats.Total)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s   %s %s\n\n",
		MutedStyle.Render("Aktif Kart"), ActiveStyle.Render(fmt.Sprint(snap.Stats.Active)),
		MutedStyle.Render("Deaktif Kart"), DisabledStyle.Render(fmt.Sprint(snap.Stats.Disabled)))

	if len(snap.Cards) == 0 {
		b.WriteString(MutedStyle.Render("Henüz kart yok. [a] ile kart ekleyin."))
		b.WriteString("\n")
		return b.String()
	}

	for i, card := range snap.Cards {
		cursor := "  "
		if i == m.cursor {
			cursor = CursorStyle.Render("> ")
		}
		star := " "
		if card.IsDefault {
			star = DefaultBadge.Render("★")
		}

		row := fmt.Sprintf("%s %-16s %s  %s  %s", star, card.Type.Label(), card.MaskedNumber, card.Expiry(),
			StatusStyle(card.IsActive).Render(statusLabel(card.IsActive)))
		if card.ID == snap.SelectedCardID {
			row = SelectedStyle.Render(row)
		} else {
			row = RowStyle.Render(row)
		}
		b.WriteString(cursor + row + "\n")

		if card.ID == snap.ExpandedCardID {
			b.WriteString(renderDetail(card))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderCardFace(card domain.Card) string {
	face := strings.ToUpper(string(card.Scheme)) + "\n\n" +
		card.MaskedNumber + "\n\n" +
		MutedStyle.Render("CARD HOLDER") + "  " + card.CardholderName + "\n" +
		MutedStyle.Render("EXPIRES") + "      " + card.Expiry()
	return CardFaceStyle.Render(face)
}

func renderDetail(card domain.Card) string {
	defaultAction := DefaultBadge.Render("Varsayılan")
	if !card.IsDefault {
		defaultAction = MutedStyle.Render("[d] Varsayılan Yap")
	}
	toggle := "[f] Kartı Dondur"
	if !card.IsActive {
		toggle = "[f] Kartı Aktif Et"
	}

	details := LabelStyle.Render("Kart Tipi") + ValueStyle.Render(card.Type.Label()) + "\n" +
		LabelStyle.Render("Kart Durumu") + StatusStyle(card.IsActive).Render(statusLabel(card.IsActive)) + "\n" +
		defaultAction + "   " + MutedStyle.Render(toggle) + "   " + MutedStyle.Render("[x] Kartı Sil")

	return lipgloss.JoinVertical(lipgloss.Left, renderCardFace(card), details)
}

func statusLabel(active bool) string {
	if active {
		return "Aktif"
	}
	return "Deaktif"
}

// formatTime renders t as "8 Haziran, 23:45".
func formatTime(t time.Time) string {
	t = t.Local()
	return fmt.Sprintf("%d %s, %02d:%02d", t.Day(), monthNames[t.Month()-1], t.Hour(), t.Minute())
}

func (m AppModel) helpLine() string {
	switch {
	case m.adding:
		return "tab: sonraki alan • enter: ekle • esc: iptal • ctrl+c: çıkış"
	case m.tab == TabCards:
		return "↑/↓: gez • enter: detay • space: seç • d: varsayılan • f: dondur • x: sil • a: ekle • tab: sekme • q: çıkış"
	default:
		return "tab: sekme • a: kart ekle • q: çıkış"
	}
}
