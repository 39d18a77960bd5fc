package records

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pable/go-h2h/internal/model"
)

func TestRead_Basic(t *testing.T) {
	in := "game,player,score,venue\n" +
		"g1,anna,1,north\n" +
		"g1,NA,2,north\n" +
		"g2,bob,3.5,south\n"

	recs, err := Read(strings.NewReader(in), DefaultNA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if recs[0].Game != "g1" || recs[0].Player != "anna" || recs[0].Score != 1 {
		t.Errorf("row 1 wrong: %+v", recs[0])
	}
	if recs[1].Known() {
		t.Errorf("NA player must load as unnamed, got %q", recs[1].Player)
	}
	if recs[2].Score != 3.5 {
		t.Errorf("score: want 3.5, got %v", recs[2].Score)
	}
	if recs[0].Extra["venue"] != "north" {
		t.Errorf("extra column lost: %+v", recs[0].Extra)
	}
}

func TestRead_ColumnsInAnyOrder(t *testing.T) {
	in := "score,game,player\n2,g1,anna\n"
	recs, err := Read(strings.NewReader(in), DefaultNA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recs[0].Game != "g1" || recs[0].Player != "anna" || recs[0].Score != 2 {
		t.Errorf("reordered header misread: %+v", recs[0])
	}
}

func TestRead_MissingColumn(t *testing.T) {
	in := "game,score\ng1,2\n"
	_, err := Read(strings.NewReader(in), DefaultNA)
	if err == nil || !strings.Contains(err.Error(), `"player"`) {
		t.Errorf("expected missing-column error naming player, got %v", err)
	}
}

func TestRead_BadScore(t *testing.T) {
	in := "game,player,score\ng1,anna,1\ng1,bob,two\n"
	_, err := Read(strings.NewReader(in), DefaultNA)
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("expected bad-score error with line number, got %v", err)
	}
}

func TestRead_CustomNAToken(t *testing.T) {
	in := "game,player,score\ng1,-,2\n"
	recs, err := Read(strings.NewReader(in), "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recs[0].Known() {
		t.Errorf("custom NA token not honoured: %+v", recs[0])
	}
}

func TestRead_NoHeader(t *testing.T) {
	if _, err := Read(strings.NewReader(""), DefaultNA); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	recs := []model.Record{
		{Game: "g1", Player: "anna", Score: 1.5, Extra: map[string]string{"venue": "north", "day": "sat"}},
		{Game: "g1", Player: "", Score: 2},
	}

	var buf bytes.Buffer
	if err := Write(&buf, recs, DefaultNA); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Extra columns after the required three, in sorted name order.
	header := strings.SplitN(buf.String(), "\n", 2)[0]
	if header != "game,player,score,day,venue" {
		t.Errorf("unexpected header: %q", header)
	}

	got, err := Read(&buf, DefaultNA)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Score != 1.5 || got[0].Extra["venue"] != "north" {
		t.Errorf("row 1 did not round-trip: %+v", got[0])
	}
	if got[1].Known() {
		t.Errorf("unnamed player did not round-trip through %q", DefaultNA)
	}
}

func TestWritePairgames(t *testing.T) {
	pgs := []model.PairgameRecord{
		{Game: 1, Player: "anna", Score: 1},
		{Game: 1, Player: "bob", Score: 2},
	}

	var buf bytes.Buffer
	if err := WritePairgames(&buf, pgs, DefaultNA); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Read(&buf, DefaultNA)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(got) != 2 || got[0].Game != "1" || got[1].Player != "bob" {
		t.Errorf("pairgames did not round-trip: %+v", got)
	}
}
