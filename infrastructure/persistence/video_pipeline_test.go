package persistence

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/dto"
)

func listRequest() dto.ListVideosRequest {
	req := dto.NewListVideosRequest()
	return req
}

func stageName(t *testing.T, stage bson.D) string {
	t.Helper()
	require.NotEmpty(t, stage)
	return stage[0].Key
}

func TestBuildVideoListPipelines_StageOrder(t *testing.T) {
	req := listRequest()
	req.Query = "gopher"

	data, count := BuildVideoListPipelines(req, nil)

	var dataStages []string
	for _, stage := range data {
		dataStages = append(dataStages, stageName(t, stage))
	}
	assert.Equal(t, []string{"$match", "$lookup", "$addFields", "$sort", "$project", "$skip", "$limit"}, dataStages)

	var countStages []string
	for _, stage := range count {
		countStages = append(countStages, stageName(t, stage))
	}
	assert.Equal(t, []string{"$match", "$lookup", "$addFields", "$sort", "$project", "$count"}, countStages)
}

func TestBuildVideoListPipelines_SharedPrefixIdentical(t *testing.T) {
	owner := bson.NewObjectID()
	req := listRequest()
	req.Query = "concurrency"
	req.Page = 3
	req.Limit = 25

	data, count := BuildVideoListPipelines(req, &owner)

	require.Len(t, data, len(count)+1)
	for i := range count[:len(count)-1] {
		assert.Equal(t, data[i], count[i], "stage %d must match between data and count pipelines", i)
	}
	assert.Equal(t, bson.D{{Key: "$count", Value: "totalVideos"}}, count[len(count)-1])
}

func TestBuildVideoListPipelines_NoFilterOmitsMatch(t *testing.T) {
	data, _ := BuildVideoListPipelines(listRequest(), nil)

	assert.Equal(t, "$lookup", stageName(t, data[0]))
	for _, stage := range data {
		assert.NotEqual(t, "$match", stageName(t, stage))
	}
}

func TestBuildVideoListPipelines_OwnerOnlyMatch(t *testing.T) {
	owner := bson.NewObjectID()

	data, _ := BuildVideoListPipelines(listRequest(), &owner)

	require.Equal(t, "$match", stageName(t, data[0]))
	match, ok := data[0][0].Value.(bson.D)
	require.True(t, ok)
	require.Len(t, match, 1)
	assert.Equal(t, "owner", match[0].Key)
	assert.Equal(t, owner, match[0].Value)
}

func TestBuildVideoListPipelines_QueryMatchesTitleOrDescription(t *testing.T) {
	req := listRequest()
	req.Query = "  golang tips  "

	data, _ := BuildVideoListPipelines(req, nil)

	require.Equal(t, "$match", stageName(t, data[0]))
	match := data[0][0].Value.(bson.D)
	require.Len(t, match, 1)
	require.Equal(t, "$or", match[0].Key)

	or, ok := match[0].Value.(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)

	title := or[0].(bson.D)
	assert.Equal(t, "title", title[0].Key)
	regex := title[0].Value.(bson.D)
	assert.Equal(t, bson.D{{Key: "$regex", Value: "golang tips"}, {Key: "$options", Value: "i"}}, regex)

	description := or[1].(bson.D)
	assert.Equal(t, "description", description[0].Key)
}

func TestBuildVideoListPipelines_QueryEscapesRegexMetacharacters(t *testing.T) {
	req := listRequest()
	req.Query = "c++ (tutorial)"

	data, _ := BuildVideoListPipelines(req, nil)

	match := data[0][0].Value.(bson.D)
	or := match[0].Value.(bson.A)
	title := or[0].(bson.D)
	regex := title[0].Value.(bson.D)
	assert.Equal(t, `c\+\+ \(tutorial\)`, regex[0].Value)
}

func TestBuildVideoListPipelines_QueryIsCaseInsensitiveSubstring(t *testing.T) {
	req := listRequest()
	req.Query = "a"

	data, _ := BuildVideoListPipelines(req, nil)

	match := data[0][0].Value.(bson.D)
	or := match[0].Value.(bson.A)
	pattern := or[0].(bson.D)[0].Value.(bson.D)[0].Value.(string)

	// Substring match, not tokenized or word-boundary based.
	re := regexp.MustCompile("(?i)" + pattern)
	assert.True(t, re.MatchString("Alpha"))
	assert.True(t, re.MatchString("Gamma"))
	assert.True(t, re.MatchString("beta"))
	assert.False(t, re.MatchString("intro"))
}

func TestBuildVideoListPipelines_Deterministic(t *testing.T) {
	owner := bson.NewObjectID()
	req := listRequest()
	req.Query = "repeat"
	req.Page = 2

	dataA, countA := BuildVideoListPipelines(req, &owner)
	dataB, countB := BuildVideoListPipelines(req, &owner)

	assert.Equal(t, dataA, dataB)
	assert.Equal(t, countA, countB)
}

func TestBuildVideoListPipelines_SortCombinations(t *testing.T) {
	cases := []struct {
		sortBy    string
		sortType  string
		field     string
		direction int
	}{
		{dto.SortByDesc, dto.SortTypeDate, "createdAt", -1},
		{dto.SortByAsc, dto.SortTypeDate, "createdAt", 1},
		{dto.SortByDesc, dto.SortTypeViews, "views", -1},
		{dto.SortByAsc, dto.SortTypeViews, "views", 1},
	}

	for _, tc := range cases {
		req := listRequest()
		req.SortBy = tc.sortBy
		req.SortType = tc.sortType

		data, _ := BuildVideoListPipelines(req, nil)

		var sort bson.D
		for _, stage := range data {
			if stage[0].Key == "$sort" {
				sort = stage[0].Value.(bson.D)
			}
		}
		require.NotNil(t, sort, "%s/%s", tc.sortBy, tc.sortType)
		assert.Equal(t, bson.D{{Key: tc.field, Value: tc.direction}}, sort)
	}
}

func TestBuildVideoListPipelines_SkipAndLimit(t *testing.T) {
	req := listRequest()
	req.Page = 4
	req.Limit = 15

	data, _ := BuildVideoListPipelines(req, nil)

	skip := data[len(data)-2]
	limit := data[len(data)-1]
	assert.Equal(t, bson.D{{Key: "$skip", Value: int64(45)}}, skip)
	assert.Equal(t, bson.D{{Key: "$limit", Value: int64(15)}}, limit)
}

func TestBuildVideoListPipelines_OwnerLookupProjectsSummaryOnly(t *testing.T) {
	data, _ := BuildVideoListPipelines(listRequest(), nil)

	lookup := data[0][0].Value.(bson.D)
	fields := map[string]interface{}{}
	for _, e := range lookup {
		fields[e.Key] = e.Value
	}
	assert.Equal(t, "users", fields["from"])
	assert.Equal(t, "owner", fields["localField"])
	assert.Equal(t, "_id", fields["foreignField"])
	assert.Equal(t, "owner", fields["as"])
}
