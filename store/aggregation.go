package store

import "go.mongodb.org/mongo-driver/bson"

// AggregationMatch helps generate aggregation object for $match
func AggregationMatch(matchCondition bson.M) bson.D {
	match := bson.D{}
	for k, v := range matchCondition {
		match = append(match, bson.E{Key: k, Value: v})
	}

	return bson.D{
		bson.E{Key: "$match", Value: match},
	}
}

// AggregationSort helps generate aggregation object for $sort
func AggregationSort(sortCondition bson.M) bson.D {
	sort := bson.D{}
	for k, v := range sortCondition {
		sort = append(sort, bson.E{Key: k, Value: v})
	}

	return bson.D{
		bson.E{Key: "$sort", Value: sort},
	}
}

// AggregationGroup helps generate aggregation object for $group
func AggregationGroup(id string, groupConditions bson.D) bson.D {
	group := bson.D{bson.E{Key: "_id", Value: id}}
	group = append(group, groupConditions...)

	return bson.D{
		bson.E{Key: "$group", Value: group},
	}
}

// AggregationReplaceRoot helps generate aggregation object for $replaceRoot
func AggregationReplaceRoot(newRoot string) bson.D {
	return bson.D{
		bson.E{Key: "$replaceRoot", Value: bson.M{"newRoot": newRoot}},
	}
}
