package cmd

import "testing"

func TestDetectExportFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"./cho.csv":         "csv",
		"./nha-dat.XLSX":    "excel",
		"./xe.xlsm":         "excel",
		"./viec-lam.db":     "sqlite",
		"./viec-lam.sqlite": "sqlite",
		"./unknown.out":     "csv",
		"./no-extension":    "csv",
	}
	for path, want := range tests {
		if got := detectExportFormat(path); got != want {
			t.Fatalf("%s: expected %s, got %s", path, want, got)
		}
	}
}
