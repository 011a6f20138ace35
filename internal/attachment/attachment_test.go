package attachment

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantLen int
	}{
		{"空输入", ``, 0},
		{"null", `null`, 0},
		{"空数组", `[]`, 0},
		{"正常数组", `[{"id":"a","name":"x.pdf"}]`, 1},
		{"字符串包裹的数组", `"[{\"id\":\"a\",\"name\":\"x.pdf\"}]"`, 1},
		{"坏数据返回空而不是报错", `{broken`, 0},
		{"双重包裹的坏字符串", `"not json"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize([]byte(tt.raw))
			if got == nil {
				t.Fatal("Normalize must never return nil")
			}
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestNormalize_FieldsSurvive(t *testing.T) {
	raw := `[{"id":"a1","name":"doc.pdf","type":"application/pdf","size":1024,"data":"aGVsbG8="}]`
	list := Normalize([]byte(raw))
	if len(list) != 1 {
		t.Fatalf("len = %d", len(list))
	}
	att := list[0]
	if att.ID != "a1" || att.Name != "doc.pdf" || att.Type != "application/pdf" ||
		att.Size != 1024 || att.Data != "aGVsbG8=" {
		t.Errorf("unexpected attachment: %+v", att)
	}
}

// 图片可以省略 size，缺字段不影响解析
func TestNormalize_ImageWithoutSize(t *testing.T) {
	list := Normalize([]byte(`[{"id":"i1","name":"pic.png","data":"eA=="}]`))
	if len(list) != 1 {
		t.Fatalf("len = %d", len(list))
	}
	if list[0].Size != 0 {
		t.Errorf("Size = %d, want 0", list[0].Size)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	in := []Attachment{{ID: "a", Name: "x.png"}}
	out := Normalize(Marshal(in))
	if len(out) != 1 || out[0].ID != "a" {
		t.Errorf("round trip failed: %+v", out)
	}

	// nil 序列化成空数组，不是 null
	if string(Marshal(nil)) != "[]" {
		t.Errorf("Marshal(nil) = %s", Marshal(nil))
	}
}
