package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/utn-integrador-III/security-service/internal/access/domain"
)

// UserRepository persists the user aggregate in the users collection. Grants
// live embedded in the document's apps array.
type UserRepository struct {
	users *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{users: db.Collection("users")}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id bson.ObjectID) (*domain.User, error) {
	var user domain.User
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (bson.ObjectID, error) {
	if user.Apps == nil {
		user.Apps = []domain.Grant{}
	}
	res, err := r.users.InsertOne(ctx, user)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("failed to insert user: %w", err)
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// ReplaceGrants rewrites the whole apps array. Callers reserve this for
// operations without a stable element predicate; it does not protect sibling
// grants from concurrent writers.
func (r *UserRepository) ReplaceGrants(ctx context.Context, email string, grants []domain.Grant) error {
	if grants == nil {
		grants = []domain.Grant{}
	}
	res, err := r.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"apps": grants}})
	if err != nil {
		return fmt.Errorf("failed to replace grants: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("no user matched email %s", email)
	}
	return nil
}

// UpdateGrantFields sets the given fields on the single array element
// matching appID, via the positional operator. Sibling elements are not read
// or written.
func (r *UserRepository) UpdateGrantFields(ctx context.Context, userID, appID bson.ObjectID, fields map[string]any) (int64, error) {
	set := bson.M{}
	for name, value := range fields {
		set["apps.$."+name] = value
	}

	res, err := r.users.UpdateOne(ctx,
		bson.M{"_id": userID, "apps.app": appID},
		bson.M{"$set": set},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update grant fields: %w", err)
	}
	return res.MatchedCount, nil
}

// RevokeAllGrants inactivates every array element in one conditional update.
func (r *UserRepository) RevokeAllGrants(ctx context.Context, userID bson.ObjectID) (int64, error) {
	res, err := r.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{
			"apps.$[].status":            domain.StatusInactive,
			"apps.$[].is_session_active": false,
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke grants: %w", err)
	}
	return res.MatchedCount, nil
}

func (r *UserRepository) FindByApp(ctx context.Context, appID *bson.ObjectID) ([]domain.User, error) {
	filter := bson.M{}
	if appID != nil {
		filter = bson.M{"apps": bson.M{"$elemMatch": bson.M{"app": *appID}}}
	}

	cur, err := r.users.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer cur.Close(ctx)

	var users []domain.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) UpdateResetInfo(ctx context.Context, email, code string, expiration time.Time, tempPassword string) error {
	res, err := r.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{
		"reset_code":       code,
		"reset_expiration": expiration,
		"temp_password":    tempPassword,
	}})
	if err != nil {
		return fmt.Errorf("failed to update reset info: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("no user matched email %s", email)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, email, hashed string) error {
	res, err := r.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"password": hashed}})
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("no user matched email %s", email)
	}
	return nil
}
