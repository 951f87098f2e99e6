// README: KMA (data.go.kr) forecast API client; realtime, village, and mid-term feeds.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"daytrip/internal/config"
)

const (
	realtimeURL  = "http://apis.data.go.kr/1360000/VilageFcstInfoService_2.0/getUltraSrtNcst"
	shortTermURL = "http://apis.data.go.kr/1360000/VilageFcstInfoService_2.0/getVilageFcst"
	midLandURL   = "http://apis.data.go.kr/1360000/MidFcstInfoService/getMidLandFcst"
	midTempURL   = "http://apis.data.go.kr/1360000/MidFcstInfoService/getMidTa"
)

// Client wraps the public forecast APIs. The HTTP client is injected so the
// caller owns the timeout policy.
type Client struct {
	http *http.Client
	cfg  config.WeatherConfig
}

func NewClient(httpClient *http.Client, cfg config.WeatherConfig) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{http: httpClient, cfg: cfg}
}

// Realtime returns the current temperature and precipitation observations.
func (c *Client) Realtime(ctx context.Context, now time.Time) (temp, precipitation string, err error) {
	// Observations publish on the hour with ~40min delay; ask for the
	// previous hour to be safe.
	base := now.Add(-1 * time.Hour)
	q := url.Values{}
	q.Set("serviceKey", c.cfg.APIKey)
	q.Set("dataType", "JSON")
	q.Set("numOfRows", "10")
	q.Set("pageNo", "1")
	q.Set("base_date", base.Format("20060102"))
	q.Set("base_time", base.Format("1504")[:2]+"00")
	q.Set("nx", c.cfg.GridNX)
	q.Set("ny", c.cfg.GridNY)

	body, err := c.get(ctx, realtimeURL, q)
	if err != nil {
		return "", "", err
	}
	return parseRealtime(body)
}

// ShortTerm returns day-by-day forecasts for roughly the next three days.
func (c *Client) ShortTerm(ctx context.Context, now time.Time) ([]DailyForecast, error) {
	q := url.Values{}
	q.Set("serviceKey", c.cfg.APIKey)
	q.Set("dataType", "JSON")
	q.Set("numOfRows", "1000")
	q.Set("pageNo", "1")
	q.Set("base_date", now.Format("20060102"))
	q.Set("base_time", "0500")
	q.Set("nx", c.cfg.GridNX)
	q.Set("ny", c.cfg.GridNY)

	body, err := c.get(ctx, shortTermURL, q)
	if err != nil {
		return nil, err
	}
	return parseVillage(body)
}

// MidTerm returns forecasts for days 4 through 7, merging the land and
// temperature mid-term feeds.
func (c *Client) MidTerm(ctx context.Context, now time.Time) ([]DailyForecast, error) {
	tmFc := now.Format("20060102") + "0600"
	q := url.Values{}
	q.Set("serviceKey", c.cfg.APIKey)
	q.Set("dataType", "JSON")
	q.Set("regId", c.cfg.RegionID)
	q.Set("tmFc", tmFc)

	landBody, err := c.get(ctx, midLandURL, q)
	if err != nil {
		return nil, err
	}
	tempBody, err := c.get(ctx, midTempURL, q)
	if err != nil {
		return nil, err
	}
	return parseMidTerm(landBody, tempBody, now)
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather api request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather api status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Envelope shared by all data.go.kr forecast responses.
type apiEnvelope struct {
	Response struct {
		Header struct {
			ResultCode string `json:"resultCode"`
			ResultMsg  string `json:"resultMsg"`
		} `json:"header"`
		Body struct {
			Items struct {
				Item json.RawMessage `json:"item"`
			} `json:"items"`
		} `json:"body"`
	} `json:"response"`
}

func decodeItems(body []byte, out interface{}) error {
	var env apiEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if code := env.Response.Header.ResultCode; code != "00" {
		return fmt.Errorf("weather api result %s: %s", code, env.Response.Header.ResultMsg)
	}
	if err := json.Unmarshal(env.Response.Body.Items.Item, out); err != nil {
		return fmt.Errorf("decode items: %w", err)
	}
	return nil
}

type ncstItem struct {
	Category string `json:"category"`
	Value    string `json:"obsrValue"`
}

func parseRealtime(body []byte) (temp, precipitation string, err error) {
	var items []ncstItem
	if err := decodeItems(body, &items); err != nil {
		return "", "", err
	}
	for _, it := range items {
		switch it.Category {
		case "T1H":
			temp = it.Value
		case "RN1":
			precipitation = it.Value
		}
	}
	return temp, precipitation, nil
}

type fcstItem struct {
	Category string `json:"category"`
	FcstDate string `json:"fcstDate"`
	FcstTime string `json:"fcstTime"`
	Value    string `json:"fcstValue"`
}

func parseVillage(body []byte) ([]DailyForecast, error) {
	var items []fcstItem
	if err := decodeItems(body, &items); err != nil {
		return nil, err
	}

	byDate := make(map[string]*DailyForecast)
	get := func(date string) *DailyForecast {
		f, ok := byDate[date]
		if !ok {
			f = &DailyForecast{Date: date}
			byDate[date] = f
		}
		return f
	}

	for _, it := range items {
		f := get(it.FcstDate)
		switch it.Category {
		case "TMX":
			f.TempMax = it.Value
		case "TMN":
			f.TempMin = it.Value
		case "SKY":
			// Representative morning and afternoon readings.
			if it.FcstTime == "0900" {
				f.SkyAm = skyLabel(it.Value)
			}
			if it.FcstTime == "1500" {
				f.SkyPm = skyLabel(it.Value)
			}
		case "POP":
			if it.FcstTime == "0900" {
				f.RainAm = it.Value
			}
			if it.FcstTime == "1500" {
				f.RainPm = it.Value
			}
		}
	}

	out := make([]DailyForecast, 0, len(byDate))
	for _, f := range byDate {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// skyLabel maps the SKY code to the label the frontend renders.
func skyLabel(code string) string {
	switch code {
	case "1":
		return "맑음"
	case "3":
		return "구름많음"
	case "4":
		return "흐림"
	default:
		return code
	}
}

type midLandItem struct {
	Wf4Am   string `json:"wf4Am"`
	Wf5Am   string `json:"wf5Am"`
	Wf6Am   string `json:"wf6Am"`
	Wf7Am   string `json:"wf7Am"`
	Wf4Pm   string `json:"wf4Pm"`
	Wf5Pm   string `json:"wf5Pm"`
	Wf6Pm   string `json:"wf6Pm"`
	Wf7Pm   string `json:"wf7Pm"`
	RnSt4Am int    `json:"rnSt4Am"`
	RnSt5Am int    `json:"rnSt5Am"`
	RnSt6Am int    `json:"rnSt6Am"`
	RnSt7Am int    `json:"rnSt7Am"`
	RnSt4Pm int    `json:"rnSt4Pm"`
	RnSt5Pm int    `json:"rnSt5Pm"`
	RnSt6Pm int    `json:"rnSt6Pm"`
	RnSt7Pm int    `json:"rnSt7Pm"`
}

type midTempItem struct {
	TaMin4 int `json:"taMin4"`
	TaMin5 int `json:"taMin5"`
	TaMin6 int `json:"taMin6"`
	TaMin7 int `json:"taMin7"`
	TaMax4 int `json:"taMax4"`
	TaMax5 int `json:"taMax5"`
	TaMax6 int `json:"taMax6"`
	TaMax7 int `json:"taMax7"`
}

func parseMidTerm(landBody, tempBody []byte, now time.Time) ([]DailyForecast, error) {
	var lands []midLandItem
	if err := decodeItems(landBody, &lands); err != nil {
		return nil, err
	}
	var temps []midTempItem
	if err := decodeItems(tempBody, &temps); err != nil {
		return nil, err
	}
	if len(lands) == 0 || len(temps) == 0 {
		return nil, fmt.Errorf("mid-term feed returned no items")
	}
	land, temp := lands[0], temps[0]

	skyAm := []string{land.Wf4Am, land.Wf5Am, land.Wf6Am, land.Wf7Am}
	skyPm := []string{land.Wf4Pm, land.Wf5Pm, land.Wf6Pm, land.Wf7Pm}
	rainAm := []int{land.RnSt4Am, land.RnSt5Am, land.RnSt6Am, land.RnSt7Am}
	rainPm := []int{land.RnSt4Pm, land.RnSt5Pm, land.RnSt6Pm, land.RnSt7Pm}
	tMin := []int{temp.TaMin4, temp.TaMin5, temp.TaMin6, temp.TaMin7}
	tMax := []int{temp.TaMax4, temp.TaMax5, temp.TaMax6, temp.TaMax7}

	out := make([]DailyForecast, 0, 4)
	for i := 0; i < 4; i++ {
		day := now.AddDate(0, 0, 4+i)
		out = append(out, DailyForecast{
			Date:    day.Format("20060102"),
			SkyAm:   skyAm[i],
			SkyPm:   skyPm[i],
			RainAm:  fmt.Sprintf("%d", rainAm[i]),
			RainPm:  fmt.Sprintf("%d", rainPm[i]),
			TempMin: fmt.Sprintf("%d", tMin[i]),
			TempMax: fmt.Sprintf("%d", tMax[i]),
		})
	}
	return out, nil
}
