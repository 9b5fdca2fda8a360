package diag

import "testing"

func TestRecordingSink(t *testing.T) {
	var r Recording
	r.Warn("stale node at %d,%d,%d", 1, 2, 3)
	r.Info("cycle %d complete", 7)
	if len(r.Warnings) != 1 || r.Warnings[0] != "stale node at 1,2,3" {
		t.Errorf("unexpected warnings: %v", r.Warnings)
	}
	if len(r.Infos) != 1 || r.Infos[0] != "cycle 7 complete" {
		t.Errorf("unexpected infos: %v", r.Infos)
	}
}

func TestDiscardSink(t *testing.T) {
	var d Discard
	d.Warn("anything")
	d.Info("anything")
}
