package models

import "go.mongodb.org/mongo-driver/bson"

// ToUpdateDocument flattens a model into the document used for a $set
// update. The _id is stripped because Mongo forbids rewriting it.
func ToUpdateDocument(model interface{}) (bson.M, error) {
	raw, err := bson.Marshal(model)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	delete(doc, "_id")
	return doc, nil
}
