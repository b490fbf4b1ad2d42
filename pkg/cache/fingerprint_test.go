package cache

import (
	"testing"
	"time"

	"github.com/moyu-x/similar-file/internal"
	"github.com/moyu-x/similar-file/pkg/normalizer"
	"github.com/moyu-x/similar-file/pkg/scorer"
)

func makeCand(olderName, newerName string, olderSize, newerSize int64, base time.Time) *scorer.DupCand {
	older := &scorer.PrecomputedFileInfo{
		FileInfo: internal.FileInfo{
			Path:    "/rec/" + olderName,
			Dir:     "/rec",
			Size:    olderSize,
			ModTime: base,
		},
		Key: normalizer.Normalize(olderName),
	}
	newer := &scorer.PrecomputedFileInfo{
		FileInfo: internal.FileInfo{
			Path:    "/rec/" + newerName,
			Dir:     "/rec",
			Size:    newerSize,
			ModTime: base.Add(time.Hour),
		},
		Key: normalizer.Normalize(newerName),
	}
	return &scorer.DupCand{Older: older, Newer: newer, Similarity: 0.95, SizeRatio: 0.01}
}

func TestFingerprint_Stable(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := makeCand("Show.ts", "[再]Show.ts", 1000, 1010, base)
	b := makeCand("Show.ts", "[再]Show.ts", 1000, 1010, base)

	if Fingerprint(a) != Fingerprint(b) {
		t.Error("Expected identical pairs to produce identical fingerprints")
	}
	if len(Fingerprint(a)) != 16 {
		t.Errorf("Fingerprint length = %d, want 16 hex characters", len(Fingerprint(a)))
	}
}

func TestFingerprint_DiffersByPath(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := makeCand("Show.ts", "[再]Show.ts", 1000, 1010, base)
	b := makeCand("Show.ts", "[字]Show.ts", 1000, 1010, base)

	if Fingerprint(a) == Fingerprint(b) {
		t.Error("Expected different pairs to produce different fingerprints")
	}
}

func TestFingerprint_InvalidatedByFileChange(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := makeCand("Show.ts", "[再]Show.ts", 1000, 1010, base)

	// 文件大小变化后指纹必须变化，旧决策自动失效
	grown := makeCand("Show.ts", "[再]Show.ts", 1000, 2020, base)
	if Fingerprint(a) == Fingerprint(grown) {
		t.Error("Expected fingerprint to change when file size changes")
	}

	// 修改时间变化同理
	touched := makeCand("Show.ts", "[再]Show.ts", 1000, 1010, base.Add(time.Minute))
	if Fingerprint(a) == Fingerprint(touched) {
		t.Error("Expected fingerprint to change when modification time changes")
	}
}
