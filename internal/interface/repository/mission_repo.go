package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mission-service/internal/domain/entity"
	"mission-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MissionCollection is the collection missions are stored in
const MissionCollection = "missions"

// missionDocument is the BSON shape of a mission
type missionDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	LaunchDate  time.Time          `bson:"launchDate"`
	SpaceCraft  string             `bson:"spaceCraft"`
	Destination string             `bson:"destination"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *missionDocument) toEntity() *entity.Mission {
	return &entity.Mission{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		LaunchDate:  d.LaunchDate.UTC(),
		SpaceCraft:  d.SpaceCraft,
		Destination: d.Destination,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

// MongoMissionRepository implements MissionRepository on a MongoDB collection
type MongoMissionRepository struct {
	collection *mongo.Collection
}

var _ repository.MissionRepository = (*MongoMissionRepository)(nil)

// NewMongoMissionRepository creates a new MongoDB mission repository
func NewMongoMissionRepository(db *mongo.Database) *MongoMissionRepository {
	return &MongoMissionRepository{
		collection: db.Collection(MissionCollection),
	}
}

// EnsureIndexes creates the indexes used for listing and status lookups
func (r *MongoMissionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "launchDate", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create mission indexes: %w", err)
	}
	return nil
}

// FindAll returns every mission ordered by creation time
func (r *MongoMissionRepository) FindAll(ctx context.Context) ([]*entity.Mission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find missions: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []missionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode missions: %w", err)
	}

	missions := make([]*entity.Mission, 0, len(docs))
	for i := range docs {
		missions = append(missions, docs[i].toEntity())
	}
	return missions, nil
}

// FindByID finds a mission by its hex id
func (r *MongoMissionRepository) FindByID(ctx context.Context, id string) (*entity.Mission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrMissionNotFound
	}

	var doc missionDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrMissionNotFound
		}
		return nil, fmt.Errorf("failed to find mission %s: %w", id, err)
	}
	return doc.toEntity(), nil
}

// Create inserts a new mission and sets its id
func (r *MongoMissionRepository) Create(ctx context.Context, mission *entity.Mission) error {
	doc := missionDocument{
		ID:          primitive.NewObjectID(),
		Name:        mission.Name,
		LaunchDate:  mission.LaunchDate,
		SpaceCraft:  mission.SpaceCraft,
		Destination: mission.Destination,
		Status:      mission.Status,
		CreatedAt:   mission.CreatedAt,
		UpdatedAt:   mission.UpdatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert mission: %w", err)
	}

	mission.ID = doc.ID.Hex()
	return nil
}

// Update applies the update and returns the mission as stored afterwards
func (r *MongoMissionRepository) Update(ctx context.Context, id string, update entity.MissionUpdate) (*entity.Mission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrMissionNotFound
	}

	set := bson.M{
		"name":        update.Name,
		"launchDate":  update.LaunchDate,
		"spaceCraft":  update.SpaceCraft,
		"destination": update.Destination,
		"updatedAt":   update.UpdatedAt,
	}
	if update.Status != "" {
		set["status"] = update.Status
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc missionDocument
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrMissionNotFound
		}
		return nil, fmt.Errorf("failed to update mission %s: %w", id, err)
	}
	return doc.toEntity(), nil
}

// Delete removes a mission by id
func (r *MongoMissionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrMissionNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete mission %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return repository.ErrMissionNotFound
	}
	return nil
}
