package cart

import (
	"github.com/girlhub/storefront/internal/catalog"
	"github.com/girlhub/storefront/internal/currency"
)

// LineView is the typed view-model the rendering layer consumes: the full
// product, the quantity, and prices already formatted for display.
type LineView struct {
	Product   catalog.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice string          `json:"unit_price"`
	LineTotal string          `json:"line_total"`
}

type View struct {
	Lines     []LineView `json:"lines"`
	ItemCount int        `json:"item_count"`
	Total     float64    `json:"total"`
	Display   string     `json:"display_total"`
}

// View derives the display model under the given converter. Changing
// currency only changes the formatted strings, never Total.
func (s *Service) View(conv *currency.Converter) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{Lines: make([]LineView, 0, len(s.lines))}
	var total float64
	for _, l := range s.lines {
		p, ok := s.catalog.Lookup(l.ProductID)
		if !ok {
			continue
		}
		lineTotal := p.Price * float64(l.Quantity)
		total += lineTotal
		v.ItemCount += l.Quantity
		v.Lines = append(v.Lines, LineView{
			Product:   p,
			Quantity:  l.Quantity,
			UnitPrice: conv.Format(p.Price),
			LineTotal: conv.Format(lineTotal),
		})
	}
	v.Total = total
	v.Display = conv.Format(total)
	return v
}
