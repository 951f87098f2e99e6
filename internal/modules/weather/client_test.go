package weather

import (
	"testing"
	"time"
)

func TestParseRealtime(t *testing.T) {
	body := []byte(`{"response":{"header":{"resultCode":"00","resultMsg":"NORMAL_SERVICE"},
		"body":{"items":{"item":[
			{"category":"T1H","obsrValue":"23.1"},
			{"category":"REH","obsrValue":"60"},
			{"category":"RN1","obsrValue":"0"}
		]}}}}`)

	temp, precipitation, err := parseRealtime(body)
	if err != nil {
		t.Fatalf("parseRealtime() error = %v", err)
	}
	if temp != "23.1" || precipitation != "0" {
		t.Errorf("got (%q, %q), want (23.1, 0)", temp, precipitation)
	}
}

func TestParseRealtime_APIError(t *testing.T) {
	body := []byte(`{"response":{"header":{"resultCode":"03","resultMsg":"NO_DATA"},"body":{"items":{"item":null}}}}`)
	if _, _, err := parseRealtime(body); err == nil {
		t.Error("parseRealtime() accepted an error result code")
	}
}

func TestParseVillage(t *testing.T) {
	body := []byte(`{"response":{"header":{"resultCode":"00","resultMsg":"NORMAL_SERVICE"},
		"body":{"items":{"item":[
			{"category":"TMN","fcstDate":"20260901","fcstTime":"0600","fcstValue":"18"},
			{"category":"TMX","fcstDate":"20260901","fcstTime":"1500","fcstValue":"27"},
			{"category":"SKY","fcstDate":"20260901","fcstTime":"0900","fcstValue":"1"},
			{"category":"SKY","fcstDate":"20260901","fcstTime":"1500","fcstValue":"4"},
			{"category":"POP","fcstDate":"20260901","fcstTime":"1500","fcstValue":"30"},
			{"category":"TMN","fcstDate":"20260902","fcstTime":"0600","fcstValue":"17"}
		]}}}}`)

	forecasts, err := parseVillage(body)
	if err != nil {
		t.Fatalf("parseVillage() error = %v", err)
	}
	if len(forecasts) != 2 {
		t.Fatalf("got %d days, want 2", len(forecasts))
	}
	day := forecasts[0]
	if day.Date != "20260901" || day.TempMin != "18" || day.TempMax != "27" {
		t.Errorf("day = %+v", day)
	}
	if day.SkyAm != "맑음" || day.SkyPm != "흐림" {
		t.Errorf("sky labels = (%q, %q)", day.SkyAm, day.SkyPm)
	}
	if day.RainPm != "30" {
		t.Errorf("RainPm = %q, want 30", day.RainPm)
	}
}

func TestParseMidTerm(t *testing.T) {
	land := []byte(`{"response":{"header":{"resultCode":"00","resultMsg":"NORMAL_SERVICE"},
		"body":{"items":{"item":[
			{"wf4Am":"맑음","wf4Pm":"구름많음","wf5Am":"흐림","wf5Pm":"흐림",
			 "wf6Am":"맑음","wf6Pm":"맑음","wf7Am":"맑음","wf7Pm":"맑음",
			 "rnSt4Am":10,"rnSt4Pm":20,"rnSt5Am":60,"rnSt5Pm":70,
			 "rnSt6Am":0,"rnSt6Pm":0,"rnSt7Am":10,"rnSt7Pm":10}
		]}}}}`)
	temp := []byte(`{"response":{"header":{"resultCode":"00","resultMsg":"NORMAL_SERVICE"},
		"body":{"items":{"item":[
			{"taMin4":17,"taMax4":26,"taMin5":16,"taMax5":24,
			 "taMin6":18,"taMax6":27,"taMin7":19,"taMax7":28}
		]}}}}`)

	now := time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)
	forecasts, err := parseMidTerm(land, temp, now)
	if err != nil {
		t.Fatalf("parseMidTerm() error = %v", err)
	}
	if len(forecasts) != 4 {
		t.Fatalf("got %d days, want 4", len(forecasts))
	}
	if forecasts[0].Date != "20260905" {
		t.Errorf("first mid-term date = %q, want 20260905", forecasts[0].Date)
	}
	if forecasts[1].SkyAm != "흐림" || forecasts[1].TempMin != "16" || forecasts[1].RainPm != "70" {
		t.Errorf("day 5 = %+v", forecasts[1])
	}
}

func TestMergeForecasts_ShortTermWins(t *testing.T) {
	short := []DailyForecast{{Date: "20260901", TempMax: "27"}, {Date: "20260902", TempMax: "25"}}
	mid := []DailyForecast{{Date: "20260902", TempMax: "99"}, {Date: "20260903", TempMax: "24"}}

	merged := mergeForecasts(short, mid)
	if len(merged) != 3 {
		t.Fatalf("got %d days, want 3", len(merged))
	}
	for _, f := range merged {
		if f.Date == "20260902" && f.TempMax != "25" {
			t.Errorf("mid-term overwrote short-term for %s", f.Date)
		}
	}
}
