package declinatio

import (
	"reflect"
	"testing"
)

func TestListI(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"1", []int{1}},
		{"1,2,3", []int{1, 2, 3}},
		{"1-3", []int{1, 2, 3}},
		{"1,5-7,9", []int{1, 5, 6, 7, 9}},
		{"", nil},
	}
	for _, c := range cases {
		got := ListI(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("ListI(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParadigmCloneIsDeep(t *testing.T) {
	parent := newParadigm("parent")
	parent.setRoot("0", RootRule{Delete: 1, Add: "x"})
	parent.Desinences[1] = DesEntry{RootID: "0", Endings: []string{"a", "b"}}
	parent.Absent[9] = true
	parent.SufD = []string{"que"}
	parent.setSuf(3, "ine")

	child := parent.clone("child")
	child.setRoot("0", RootRule{Delete: 2, Add: "y"})
	child.Desinences[1] = DesEntry{RootID: "0", Endings: []string{"z"}}
	child.Absent[10] = true
	child.SufD[0] = "ve"
	child.setSuf(3, "cine")

	if parent.Roots["0"].Add != "x" {
		t.Errorf("parent root mutated by child override: %+v", parent.Roots["0"])
	}
	if len(parent.Desinences[1].Endings) != 2 || parent.Desinences[1].Endings[0] != "a" {
		t.Errorf("parent desinences mutated by child override: %+v", parent.Desinences[1])
	}
	if parent.Absent[10] {
		t.Error("parent absent set mutated by child override")
	}
	if parent.SufD[0] != "que" {
		t.Errorf("parent sufd mutated by child override: %v", parent.SufD)
	}
	if parent.Suf[3] != "ine" {
		t.Errorf("parent suf mutated by child override: %v", parent.Suf)
	}
}

func TestParadigmOrderPreservedAcrossOverride(t *testing.T) {
	p := newParadigm("p")
	p.setRoot("0", RootRule{})
	p.setRoot("1", RootRule{})
	p.setRoot("0", RootRule{Add: "overridden"})

	if got := p.RootOrder(); !reflect.DeepEqual(got, []string{"0", "1"}) {
		t.Errorf("RootOrder() = %v, want [0 1] (override must not reorder)", got)
	}
	if p.Roots["0"].Add != "overridden" {
		t.Errorf("override did not take effect: %+v", p.Roots["0"])
	}
}

func TestAscendingTags(t *testing.T) {
	p := newParadigm("p")
	p.Desinences[9] = DesEntry{}
	p.Desinences[1] = DesEntry{}
	p.Desinences[5] = DesEntry{}

	if got := p.AscendingTags(); !reflect.DeepEqual(got, []int{1, 5, 9}) {
		t.Errorf("AscendingTags() = %v, want [1 5 9]", got)
	}
}
