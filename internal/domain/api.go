package domain

type CreateLinkRequest struct {
	URL       string `json:"url"`
	Validity  *int   `json:"validity,omitempty"`
	Shortcode string `json:"shortcode,omitempty"`
}

type CreateLinkResponse struct {
	Shortlink string `json:"shortlink"`
	Expiry    string `json:"expiry"`
}

type ClickData struct {
	Timestamp   string `json:"timestamp"`
	Referrer    string `json:"referrer"`
	Geolocation string `json:"geolocation"`
}

type StatsResponse struct {
	Shortcode    string      `json:"shortcode"`
	TotalClicks  int64       `json:"total_clicks"`
	OriginalURL  string      `json:"original_url"`
	CreationDate string      `json:"creation_date"`
	ExpiryDate   string      `json:"expiry_date"`
	ClickData    []ClickData `json:"click_data"`
}

func NewStatsResponse(v *StatsView) StatsResponse {
	clicks := make([]ClickData, len(v.ClickLog))
	for i, ev := range v.ClickLog {
		clicks[i] = ClickData{
			Timestamp:   FormatTime(ev.Timestamp),
			Referrer:    ev.Referrer,
			Geolocation: ev.Geolocation,
		}
	}
	return StatsResponse{
		Shortcode:    v.Shortcode,
		TotalClicks:  v.ClickCount,
		OriginalURL:  v.LongURL,
		CreationDate: FormatTime(v.CreatedAt),
		ExpiryDate:   FormatTime(v.ExpiresAt),
		ClickData:    clicks,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
