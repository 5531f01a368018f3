package persistence

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"videotube/domain/dto"
)

// sortFieldFor maps the sortType literal to the stored field name.
func sortFieldFor(sortType string) string {
	if sortType == dto.SortTypeViews {
		return "views"
	}
	return "createdAt"
}

// sortDirectionFor maps the sortBy literal to a Mongo sort direction.
func sortDirectionFor(sortBy string) int {
	if sortBy == dto.SortByAsc {
		return 1
	}
	return -1
}

// BuildVideoListPipelines builds the data and count aggregation pipelines for
// a video listing request. Inputs are assumed validated by the usecase.
//
// Both pipelines share the same leading stages (filter, owner lookup, collapse,
// sort, projection); they differ only in the trailing stages — skip/limit for
// the data page, $count for the total. Keeping them structurally identical up
// to that point is what makes totalPages/hasNextPage consistent with the
// returned page.
func BuildVideoListPipelines(req dto.ListVideosRequest, owner *bson.ObjectID) (data mongo.Pipeline, count mongo.Pipeline) {
	shared := mongo.Pipeline{}

	// Filter stage, only when at least one condition applies. Owner and
	// free-text combine as AND(owner, OR(title, description)).
	conditions := bson.D{}
	if owner != nil {
		conditions = append(conditions, bson.E{Key: "owner", Value: *owner})
	}
	if q := strings.TrimSpace(req.Query); q != "" {
		pattern := regexp.QuoteMeta(q)
		conditions = append(conditions, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: bson.D{{Key: "$regex", Value: pattern}, {Key: "$options", Value: "i"}}}},
			bson.D{{Key: "description", Value: bson.D{{Key: "$regex", Value: pattern}, {Key: "$options", Value: "i"}}}},
		}})
	}
	if len(conditions) > 0 {
		shared = append(shared, bson.D{{Key: "$match", Value: conditions}})
	}

	// Owner enrichment: left outer join against users, projecting only the
	// public summary fields.
	shared = append(shared, bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: "users"},
		{Key: "localField", Value: "owner"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "owner"},
		{Key: "pipeline", Value: mongo.Pipeline{
			bson.D{{Key: "$project", Value: bson.D{
				{Key: "username", Value: 1},
				{Key: "fullName", Value: 1},
				{Key: "avatar", Value: 1},
			}}},
		}},
	}}})

	// Collapse the zero-or-one joined user array to a single optional value.
	// A video whose owner no longer exists keeps an empty owner field.
	shared = append(shared, bson.D{{Key: "$addFields", Value: bson.D{
		{Key: "owner", Value: bson.D{{Key: "$first", Value: "$owner"}}},
	}}})

	// Sort before pagination so page boundaries are stable for a fixed query.
	shared = append(shared, bson.D{{Key: "$sort", Value: bson.D{
		{Key: sortFieldFor(req.SortType), Value: sortDirectionFor(req.SortBy)},
	}}})

	shared = append(shared, bson.D{{Key: "$project", Value: bson.D{
		{Key: "title", Value: 1},
		{Key: "description", Value: 1},
		{Key: "videoFile", Value: 1},
		{Key: "thumbnail", Value: 1},
		{Key: "duration", Value: 1},
		{Key: "views", Value: 1},
		{Key: "isPublished", Value: 1},
		{Key: "createdAt", Value: 1},
		{Key: "updatedAt", Value: 1},
		{Key: "owner", Value: 1},
	}}})

	data = append(mongo.Pipeline{}, shared...)
	data = append(data,
		bson.D{{Key: "$skip", Value: int64(req.Page-1) * int64(req.Limit)}},
		bson.D{{Key: "$limit", Value: int64(req.Limit)}},
	)

	count = append(mongo.Pipeline{}, shared...)
	count = append(count, bson.D{{Key: "$count", Value: "totalVideos"}})

	return data, count
}
