package attachment

import (
	"testing"
)

// 幸存的现有附件保持顺序在前，新附件分配ID、打isNew标记、追加在后
func TestReconcile_SurvivorsAndNewEntries(t *testing.T) {
	current := []Attachment{
		{ID: "a", Name: "first.pdf"},
		{ID: "b", Name: "second.pdf"},
	}
	incoming := []Attachment{
		{Name: "x"},
	}

	result := Reconcile(current, []string{"a"}, incoming)

	if len(result) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(result), result)
	}
	if result[0].ID != "b" {
		t.Errorf("survivor ID = %q, want b", result[0].ID)
	}
	if result[0].IsNew {
		t.Error("survivor should not be marked isNew")
	}
	if result[1].Name != "x" {
		t.Errorf("new entry name = %q, want x", result[1].Name)
	}
	if result[1].ID == "" {
		t.Error("new entry should get a generated ID")
	}
	if !result[1].IsNew {
		t.Error("new entry should be marked isNew")
	}
}

// 删除列表里未知的ID是无操作：不报错、不误删
func TestReconcile_UnknownRemovalIDIsNoop(t *testing.T) {
	current := []Attachment{
		{ID: "a"},
		{ID: "b"},
	}

	result := Reconcile(current, []string{"does-not-exist"}, nil)

	if len(result) != 2 {
		t.Fatalf("len = %d, want 2", len(result))
	}
	if result[0].ID != "a" || result[1].ID != "b" {
		t.Errorf("order changed: %+v", result)
	}
}

// 新附件各自拿到不同的新ID，与现有ID不冲突
func TestReconcile_FreshIDsAreUnique(t *testing.T) {
	current := []Attachment{{ID: "a"}}
	incoming := []Attachment{{Name: "n1"}, {Name: "n2"}}

	result := Reconcile(current, nil, incoming)

	seen := make(map[string]struct{})
	for _, att := range result {
		if att.ID == "" {
			t.Fatal("empty ID in result")
		}
		if _, dup := seen[att.ID]; dup {
			t.Fatalf("duplicate ID %q", att.ID)
		}
		seen[att.ID] = struct{}{}
	}
}

// 客户端带ID的新附件保留自己的ID
func TestReconcile_IncomingWithIDKeepsIt(t *testing.T) {
	result := Reconcile(nil, nil, []Attachment{{ID: "client-id", Name: "n"}})
	if result[0].ID != "client-id" {
		t.Errorf("ID = %q, want client-id", result[0].ID)
	}
	if !result[0].IsNew {
		t.Error("incoming entry should still be marked isNew")
	}
}

// 原数组不被修改
func TestReconcile_DoesNotMutateInput(t *testing.T) {
	current := []Attachment{{ID: "a", Name: "keep"}}
	_ = Reconcile(current, []string{"a"}, []Attachment{{Name: "x"}})

	if current[0].ID != "a" || current[0].Name != "keep" || current[0].IsNew {
		t.Errorf("input mutated: %+v", current[0])
	}
}

func TestClearNewFlags(t *testing.T) {
	list := []Attachment{{ID: "a", IsNew: true}, {ID: "b", IsNew: true}}
	out := ClearNewFlags(list)

	for _, att := range out {
		if att.IsNew {
			t.Errorf("IsNew not cleared for %q", att.ID)
		}
	}
	// 入参不被改动
	if !list[0].IsNew {
		t.Error("input slice should be untouched")
	}
}
