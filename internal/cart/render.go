package cart

import (
	"resto_web/internal/models"

	"github.com/shopspring/decimal"
)

// render reconstruit entièrement la projection et la pousse à tous les sinks.
func (m *Manager) render() {
	total := decimal.Zero
	lines := make([]models.SnapshotLine, 0, len(m.order))

	for _, name := range m.order {
		line := m.lines[name]
		lineTotal := line.LineTotal()
		lines = append(lines, models.SnapshotLine{
			Name:      line.Name,
			Quantity:  line.Quantity,
			LineTotal: lineTotal.StringFixed(2),
		})
		total = total.Add(lineTotal)
	}

	m.snapshot = models.Snapshot{Lines: lines, GrandTotal: total.StringFixed(2)}
	for _, s := range m.sinks {
		s.Render(m.snapshot)
	}
}

func emptySnapshot() models.Snapshot {
	return models.Snapshot{Lines: []models.SnapshotLine{}, GrandTotal: decimal.Zero.StringFixed(2)}
}
