package ui

// ConfirmOutcome is the result of feeding a key to an active Confirm.
type ConfirmOutcome int

const (
	ConfirmPending ConfirmOutcome = iota
	ConfirmYes
	ConfirmNo
)

// Confirm is a reusable yes/no gate: idle until activated, then it eats
// keys until the user answers. Only a ConfirmYes outcome should trigger
// the guarded action.
type Confirm struct {
	active bool
	prompt string
}

func NewConfirm() Confirm {
	return Confirm{}
}

func (c Confirm) Active() bool {
	return c.active
}

func (c Confirm) Activate(prompt string) Confirm {
	c.active = true
	c.prompt = prompt
	return c
}

func (c Confirm) Update(key string) (Confirm, ConfirmOutcome) {
	if !c.active {
		return c, ConfirmPending
	}
	switch key {
	case "y", "Y", "enter":
		c.active = false
		return c, ConfirmYes
	case "n", "N", "esc":
		c.active = false
		return c, ConfirmNo
	default:
		return c, ConfirmPending
	}
}

func (c Confirm) View() string {
	if !c.active {
		return ""
	}
	return bannerErrorStyle.Render(c.prompt) + " " + hintStyle.Render("y/n")
}
