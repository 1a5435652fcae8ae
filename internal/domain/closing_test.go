package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validRecord() ClosingRecord {
	return ClosingRecord{
		TicketConcernID: 42,
		Resolution:      "Replaced the cable",
		Categories:      []CategorySelection{{CategoryID: 1, Description: "Hardware"}},
		SubCategories:   []SubCategorySelection{{SubCategoryID: 10, CategoryID: 1, Description: "Cabling"}},
	}
}

func TestClosingRecordValidate(t *testing.T) {
	require.NoError(t, validRecord().Validate())
}

func TestClosingRecordValidateEmptyResolution(t *testing.T) {
	record := validRecord()
	record.Resolution = ""
	require.Error(t, record.Validate())
}

func TestClosingRecordValidateNoCategories(t *testing.T) {
	record := validRecord()
	record.Categories = nil
	require.Error(t, record.Validate())
}

func TestClosingRecordValidateNoSubCategories(t *testing.T) {
	record := validRecord()
	record.SubCategories = nil
	require.Error(t, record.Validate())
}

func TestClosingRecordValidateOrphanSubCategory(t *testing.T) {
	record := validRecord()
	record.SubCategories = []SubCategorySelection{{SubCategoryID: 10, CategoryID: 99}}
	require.Error(t, record.Validate())
}

func TestClosingRecordValidateTechniciansOptional(t *testing.T) {
	record := validRecord()
	record.Technicians = nil
	require.NoError(t, record.Validate())
}
