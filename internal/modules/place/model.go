// README: Catalog records for attractions and eateries.
package place

// Attraction is one tourist-spot row from the municipal open dataset.
type Attraction struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Description   string  `json:"description"`
	ReferenceDate string  `json:"referenceDate"`
	Area          string  `json:"area"`
	Category      string  `json:"category"`
	ImageURL      string  `json:"imageUrl"`
}

// Eatery is one registered local-merchant row. Type carries the merchant
// category string (식당, 카페, ...) and doubles as the recommendation tag.
type Eatery struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	DetailAddress string  `json:"detailAddress"`
	Location      string  `json:"location"`
	Type          string  `json:"type"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}
