package version

import "testing"

func TestInfo(t *testing.T) {
	bi := Info()
	if bi.Service != "contentgate-api" || bi.Version == "" {
		t.Fatalf("unexpected build info %+v", bi)
	}
}
