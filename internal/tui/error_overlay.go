package tui

type errorOverlayModel struct {
	message string
}

func newErrorOverlay(err error) errorOverlayModel {
	return errorOverlayModel{message: humanizeError(err)}
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + m.message
	return overlayBoxStyle.Render(content)
}
