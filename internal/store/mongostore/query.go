package mongostore

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/isdelr/tasks-api-be/internal/models"
)

var sortFields = map[string]string{
	models.SortByName:        "name",
	models.SortByCompleted:   "completed",
	models.SortByDescription: "description",
}

// listFilter matches on completed only when the query asks for it.
func listFilter(q models.TaskQuery) bson.M {
	if q.Completed == nil {
		return bson.M{}
	}
	return bson.M{"completed": *q.Completed}
}

// listOptions renders skip, limit and sort. _id breaks ties so pages are stable.
func listOptions(q models.TaskQuery) *options.FindOptions {
	sort := bson.D{}
	if field, ok := sortFields[q.SortBy]; ok {
		dir := 1
		if q.Descending() {
			dir = -1
		}
		sort = append(sort, bson.E{Key: field, Value: dir})
	}
	sort = append(sort, bson.E{Key: "_id", Value: 1})

	return options.Find().
		SetSkip(int64(q.Skip())).
		SetLimit(int64(q.Limit)).
		SetSort(sort)
}

// patchUpdate renders a $set with only the fields present in patch.
func patchUpdate(patch models.TaskPatch) bson.M {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Completed != nil {
		set["completed"] = *patch.Completed
	}
	return bson.M{"$set": set}
}
