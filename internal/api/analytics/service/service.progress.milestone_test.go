package analyticssvc

import (
	"testing"
	"time"
)

func TestMilestoneBucketID_DinhDang(t *testing.T) {
	loc := time.UTC
	// 2024-03-05 10:30 UTC
	millis := time.Date(2024, 3, 5, 10, 30, 0, 0, loc).UnixMilli()

	got := MilestoneBucketID(millis, loc)
	if got != "m_5-3-2024" {
		t.Errorf("MilestoneBucketID = %q, muốn m_5-3-2024", got)
	}
}

func TestMilestoneBucketID_CungNgayCungID(t *testing.T) {
	loc := time.UTC
	morning := time.Date(2024, 3, 5, 0, 0, 1, 0, loc).UnixMilli()
	evening := time.Date(2024, 3, 5, 23, 59, 59, 0, loc).UnixMilli()

	if MilestoneBucketID(morning, loc) != MilestoneBucketID(evening, loc) {
		t.Error("hai timestamp trong cùng ngày phải cho cùng bucket id")
	}

	nextDay := time.Date(2024, 3, 6, 0, 0, 1, 0, loc).UnixMilli()
	if MilestoneBucketID(morning, loc) == MilestoneBucketID(nextDay, loc) {
		t.Error("hai ngày khác nhau phải cho bucket id khác nhau")
	}
}

func TestMilestoneBucketID_TheoTimezone(t *testing.T) {
	nairobi, err := time.LoadLocation("Africa/Nairobi")
	if err != nil {
		t.Skipf("không load được timezone Africa/Nairobi: %v", err)
	}

	// 23:00 UTC = 02:00 hôm sau giờ Nairobi (UTC+3)
	millis := time.Date(2024, 3, 5, 23, 0, 0, 0, time.UTC).UnixMilli()

	if got := MilestoneBucketID(millis, time.UTC); got != "m_5-3-2024" {
		t.Errorf("bucket UTC = %q, muốn m_5-3-2024", got)
	}
	if got := MilestoneBucketID(millis, nairobi); got != "m_6-3-2024" {
		t.Errorf("bucket Nairobi = %q, muốn m_6-3-2024", got)
	}
}

func TestDayWindow(t *testing.T) {
	loc := time.UTC
	millis := time.Date(2024, 3, 5, 14, 45, 0, 0, loc).UnixMilli()

	start, end := dayWindow(millis, loc)

	wantStart := time.Date(2024, 3, 5, 0, 0, 0, 0, loc).UnixMilli()
	wantEnd := time.Date(2024, 3, 6, 0, 0, 0, 0, loc).UnixMilli() - 1
	if start != wantStart {
		t.Errorf("dayWindow start = %d, muốn %d", start, wantStart)
	}
	if end != wantEnd {
		t.Errorf("dayWindow end = %d, muốn %d", end, wantEnd)
	}
	if millis < start || millis > end {
		t.Error("timestamp đầu vào phải nằm trong cửa sổ ngày của chính nó")
	}
}
