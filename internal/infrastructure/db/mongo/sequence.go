package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// sequence allocates monotonically increasing numeric ids per collection,
// backed by a counters document incremented atomically. Users and tasks
// expose small integer ids, which Mongo does not hand out natively.
type sequence struct {
	coll *mongo.Collection
}

func newSequence(db *mongo.Database) *sequence {
	return &sequence{coll: db.Collection(countersCollection)}
}

type counterDoc struct {
	ID    string `bson:"_id"`
	Value int64  `bson:"value"`
}

// next returns the next id for name, creating the counter on first use.
func (s *sequence) next(ctx context.Context, name string) (int64, error) {
	after := options.After
	res := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		&options.FindOneAndUpdateOptions{
			ReturnDocument: &after,
			Upsert:         boolPtr(true),
		},
	)

	var doc counterDoc
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("next sequence %q: %w", name, err)
	}
	return doc.Value, nil
}

func boolPtr(b bool) *bool { return &b }
