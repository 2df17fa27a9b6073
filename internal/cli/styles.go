package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/anonymity12/habitplanet/pkg/entity"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	rarityStyles = map[entity.Rarity]lipgloss.Style{
		entity.RarityCommon:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		entity.RarityRare:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		entity.RarityEpic:      lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true),
		entity.RarityLegendary: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true).Underline(true),
	}
)

func rarity(r entity.Rarity) string {
	style, ok := rarityStyles[r]
	if !ok {
		return string(r)
	}
	return style.Render(string(r))
}
