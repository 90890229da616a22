// internal/tui/add_form.go
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cardwallet/internal/form"
)

// Field indexes of the add-card form, in tab order.
const (
	fieldNumber = iota
	fieldName
	fieldMonth
	fieldYear
	fieldCVV
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldNumber: "Kart Numarası",
	fieldName:   "Kart Sahibi",
	fieldMonth:  "Ay (AA)",
	fieldYear:   "Yıl (YY)",
	fieldCVV:    "CVV",
}

// AddCardFormModel renders the add-card form as a column of text inputs.
// Submission and cancellation are handled by the parent model.
type AddCardFormModel struct {
	inputs [fieldCount]textinput.Model
	focus  int
	err    string
}

// NewAddCardFormModel creates an empty form with the card number field focused.
func NewAddCardFormModel() AddCardFormModel {
	var m AddCardFormModel

	number := textinput.New()
	number.Placeholder = "1234 5678 9012 3456"
	number.CharLimit = 19
	m.inputs[fieldNumber] = number

	name := textinput.New()
	name.Placeholder = "Ad Soyad"
	name.CharLimit = 40
	m.inputs[fieldName] = name

	month := textinput.New()
	month.Placeholder = "AA"
	month.CharLimit = 2
	m.inputs[fieldMonth] = month

	year := textinput.New()
	year.Placeholder = "YY"
	year.CharLimit = 2
	m.inputs[fieldYear] = year

	cvv := textinput.New()
	cvv.Placeholder = "123"
	cvv.CharLimit = 3
	cvv.EchoMode = textinput.EchoPassword
	m.inputs[fieldCVV] = cvv

	for i := range m.inputs {
		m.inputs[i].Prompt = "> "
	}
	m.inputs[fieldNumber].Focus()
	return m
}

// Form returns the current field values.
func (m AddCardFormModel) Form() form.AddCard {
	return form.AddCard{
		CardNumber:     m.inputs[fieldNumber].Value(),
		CardholderName: m.inputs[fieldName].Value(),
		ExpiryMonth:    m.inputs[fieldMonth].Value(),
		ExpiryYear:     m.inputs[fieldYear].Value(),
		CVV:            m.inputs[fieldCVV].Value(),
	}
}

// Focused returns the index of the focused field.
func (m AddCardFormModel) Focused() int {
	return m.focus
}

// SetError shows msg under the form. An empty msg clears it.
func (m *AddCardFormModel) SetError(msg string) {
	m.err = msg
}

// Update moves focus on tab/shift+tab and forwards other keys to the
// focused input. The card number is regrouped in blocks of four after
// every edit.
func (m AddCardFormModel) Update(msg tea.Msg) (AddCardFormModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return m.focusField((m.focus + 1) % fieldCount), nil
		case "shift+tab", "up":
			return m.focusField((m.focus + fieldCount - 1) % fieldCount), nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.focus == fieldNumber {
		raw := m.inputs[fieldNumber].Value()
		if formatted := form.FormatCardNumber(raw); formatted != raw {
			m.inputs[fieldNumber].SetValue(formatted)
			m.inputs[fieldNumber].CursorEnd()
		}
	}
	m.err = ""
	return m, cmd
}

func (m AddCardFormModel) focusField(i int) AddCardFormModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

// View renders the form.
func (m AddCardFormModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Yeni Kart"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		b.WriteString(LabelStyle.Render(fieldLabels[i]))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.Form().Normalize().Valid() {
		b.WriteString(ActiveStyle.Render("[enter] Kartı Ekle"))
	} else {
		b.WriteString(MutedStyle.Render("[enter] Kartı Ekle"))
	}
	b.WriteString(HelpStyle.Render("  [esc] İptal  [tab] sonraki alan"))

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(m.err))
	}
	return FormStyle.Render(b.String())
}
