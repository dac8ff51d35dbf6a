package intent_test

import (
	"encoding/json"
	"testing"

	"github.com/mind-engage/gradescale/internal/intent"
)

func TestAdjustStudentPoints_JSON(t *testing.T) {
	var in intent.Intent = intent.AdjustStudentPoints{Student: "Alice", Step: 0.5}
	if in.Name() != "AdjustStudentPoints" {
		t.Fatalf("Name() = %q", in.Name())
	}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"name":"Alice","step":0.5}` {
		t.Fatalf("json = %s", b)
	}
	var back intent.AdjustStudentPoints
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back.Student != "Alice" || back.Step != 0.5 {
		t.Fatalf("decoded = %+v", back)
	}
}
