package enrich

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/epimonitor/epimonitor-api/external/mocks"
	"github.com/epimonitor/epimonitor-api/schema"
)

func TestContinentsBroadcastsMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := []schema.DailyRecord{
		{Country: "Iceland", Confirmed: 10},
		{Country: "Iceland", Confirmed: 20},
		{Country: "Japan", Confirmed: 5},
		{Country: "Atlantis", Confirmed: 1},
	}

	classifier := mocks.NewMockClassifier(ctrl)
	// one batch call over the de-duplicated country set, never per row
	classifier.EXPECT().
		Continents(gomock.Any(), []string{"Iceland", "Japan", "Atlantis"}).
		Return(map[string]string{"Iceland": "Europe", "Japan": "Asia"}, nil).
		Times(1)

	Continents(context.Background(), classifier, records)

	assert.Equal(t, "Europe", records[0].Continent)
	assert.Equal(t, "Europe", records[1].Continent)
	assert.Equal(t, "Asia", records[2].Continent)
	assert.Equal(t, "Other", records[3].Continent)
}

func TestContinentsStandardizesNamesFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := []schema.DailyRecord{
		{Country: "US", Confirmed: 10},
		{Country: "Korea, South", Confirmed: 10},
	}

	classifier := mocks.NewMockClassifier(ctrl)
	classifier.EXPECT().
		Continents(gomock.Any(), []string{"United States", "South Korea"}).
		Return(map[string]string{"United States": "North America", "South Korea": "Asia"}, nil)

	Continents(context.Background(), classifier, records)

	assert.Equal(t, "United States", records[0].Country)
	assert.Equal(t, "North America", records[0].Continent)
	assert.Equal(t, "South Korea", records[1].Country)
	assert.Equal(t, "Asia", records[1].Continent)
}

func TestContinentsClassifierUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := []schema.DailyRecord{
		{Country: "Iceland", Confirmed: 10},
		{Country: "Japan", Confirmed: 5},
	}

	classifier := mocks.NewMockClassifier(ctrl)
	classifier.EXPECT().
		Continents(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("connection refused"))

	// degradation, not failure: every row falls into the Other bucket
	Continents(context.Background(), classifier, records)

	for _, r := range records {
		assert.Equal(t, "Other", r.Continent)
	}
}

func TestContinentsRejectsUnknownLabels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := []schema.DailyRecord{
		{Country: "Iceland", Confirmed: 10},
		{Country: "Japan", Confirmed: 5},
	}

	classifier := mocks.NewMockClassifier(ctrl)
	// labels outside the continent vocabulary are not trusted
	classifier.EXPECT().
		Continents(gomock.Any(), gomock.Any()).
		Return(map[string]string{"Iceland": "Middle Earth", "Japan": "Asia"}, nil)

	Continents(context.Background(), classifier, records)

	assert.Equal(t, "Other", records[0].Continent)
	assert.Equal(t, "Asia", records[1].Continent)
}

func TestContinentsNilClassifier(t *testing.T) {
	records := []schema.DailyRecord{{Country: "Iceland", Confirmed: 10}}

	Continents(context.Background(), nil, records)

	assert.Equal(t, "Other", records[0].Continent)
}

func TestContinentsMappingIsTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := []schema.DailyRecord{
		{Country: "Iceland", Confirmed: 10},
		{Country: "Nowhere", Confirmed: 1},
	}

	classifier := mocks.NewMockClassifier(ctrl)
	classifier.EXPECT().
		Continents(gomock.Any(), gomock.Any()).
		Return(map[string]string{"Iceland": "Europe"}, nil)

	Continents(context.Background(), classifier, records)

	for _, r := range records {
		assert.NotEmpty(t, r.Continent)
	}
}
