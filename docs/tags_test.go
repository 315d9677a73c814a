package docs

import (
	"reflect"
	"testing"
)

func TestBuildTags_EmissionOrder(t *testing.T) {
	tags := BuildTags(fullAnswers())

	want := []string{
		"purchase_resale",
		"condo",
		"subject_property_rented",
		"employed", "self_employed", "retired", "rental", "other",
		"self_employed_incorporated",
		"other_income_alimony", "other_income_maternity_leave",
		"dp_savings", "dp_gift", "dp_sale_of_property", "dp_rrsp_hbp",
		"rrsp", "tfsa", "fhsa",
		"has_other_properties",
	}

	if !reflect.DeepEqual(tags, want) {
		t.Errorf("BuildTags() = %v, want %v", tags, want)
	}
}

func TestBuildTags_EmptyAnswers(t *testing.T) {
	if tags := BuildTags(&Answers{}); len(tags) != 0 {
		t.Errorf("BuildTags(empty) = %v, want no tags", tags)
	}
	if tags := BuildTags(nil); tags != nil {
		t.Errorf("BuildTags(nil) = %v, want nil", tags)
	}
}

func TestBuildTags_OptionalFlags(t *testing.T) {
	// A false flag and a nil flag both mean "no tag".
	tags := BuildTags(&Answers{
		IsCondo:               boolPtr(false),
		SubjectPropertyRented: nil,
		HasOtherProperties:    boolPtr(false),
	})
	if len(tags) != 0 {
		t.Errorf("false/nil flags should emit no tags, got %v", tags)
	}

	tags = BuildTags(&Answers{SubjectPropertyRented: boolPtr(true)})
	want := []string{"subject_property_rented"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("BuildTags() = %v, want %v", tags, want)
	}
}

func TestBuildTags_SelfEmployedTypeWithoutSource(t *testing.T) {
	// The sub-type tag follows the sub-type field alone; pairing it with
	// the income source is the form's concern.
	tags := BuildTags(&Answers{SelfEmployedType: SelfEmployedSoleProprietor})
	want := []string{"self_employed_sole_proprietor"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("BuildTags() = %v, want %v", tags, want)
	}
}
