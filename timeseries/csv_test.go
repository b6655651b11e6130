package timeseries

import (
	"strings"
	"testing"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `Month,Passengers
1949-01,112
1949-02,118
1949-03,132
1949-04,129
1949-05,121`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 5 {
		t.Errorf("Expected 5 observations, got %d", series.Len())
	}

	expected := []float64{112, 118, 132, 129, 121}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}

	if len(series.Timestamps) != series.Len() {
		t.Errorf("Expected %d timestamps, got %d", series.Len(), len(series.Timestamps))
	}
	if series.Timestamps[0].Year() != 1949 {
		t.Errorf("Expected first timestamp in 1949, got %v", series.Timestamps[0])
	}
}

func TestLoadCSVByColumnName(t *testing.T) {
	csvData := `Month,Passengers,Flights
1949-01,112,90
1949-02,118,95`

	opts := DefaultCSVOptions()
	opts.ValueColumn = "Passengers"

	series, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}
	if series.Len() != 2 || series.Values[0] != 112 {
		t.Errorf("Unexpected series: %v", series.Values)
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	csvData := `Month,Passengers
1949-01,112`

	opts := DefaultCSVOptions()
	opts.ValueColumn = "Riders"

	if _, err := LoadCSVFromReader(strings.NewReader(csvData), opts); err == nil {
		t.Error("Expected error for missing column")
	}
}

func TestLoadCSVMalformedValue(t *testing.T) {
	csvData := `Month,Passengers
1949-01,112
1949-02,oops
1949-03,132`

	opts := DefaultCSVOptions()

	_, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	if err == nil {
		t.Fatal("Expected error for malformed value, got none")
	}
	if !strings.Contains(err.Error(), "oops") {
		t.Errorf("Error should name the offending cell, got: %v", err)
	}
}

func TestLoadCSVNoHeader(t *testing.T) {
	csvData := `1,112
2,118
3,132`

	opts := DefaultCSVOptions()
	opts.HasHeader = false
	opts.ColumnIndex = 1

	series, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}
	if series.Len() != 3 || series.Values[2] != 132 {
		t.Errorf("Unexpected series: %v", series.Values)
	}
}

func TestLoadCSVEmpty(t *testing.T) {
	opts := DefaultCSVOptions()
	if _, err := LoadCSVFromReader(strings.NewReader("Month,Passengers\n"), opts); err == nil {
		t.Error("Expected error for empty data")
	}
}

func TestLoadCSVColumnOutOfRange(t *testing.T) {
	csvData := `Month,Passengers
1949-01,112`

	opts := DefaultCSVOptions()
	opts.ValueColumn = ""
	opts.ColumnIndex = 7

	if _, err := LoadCSVFromReader(strings.NewReader(csvData), opts); err == nil {
		t.Error("Expected error for out-of-range column index")
	}
}

func TestLoadCSVSkipRows(t *testing.T) {
	csvData := `# airline passengers, monthly totals
Month,Passengers
1949-01,112
1949-02,118`

	opts := DefaultCSVOptions()
	opts.SkipRows = 1

	series, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}
	if series.Len() != 2 {
		t.Errorf("Expected 2 observations, got %d", series.Len())
	}
}
