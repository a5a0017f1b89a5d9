package graph

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/graphql-go/graphql"

	"github.com/leftovers-tracker/backend/internal/models"
	"github.com/leftovers-tracker/backend/internal/service"
	"github.com/leftovers-tracker/backend/internal/types"
)

// Resolver wires the GraphQL operations to the leftover service. Mutation
// arguments are decoded into the strict input types and validated before
// any business logic runs.
type Resolver struct {
	service  *service.LeftoverService
	validate *validator.Validate
}

// NewResolver creates a new Resolver instance
func NewResolver(svc *service.LeftoverService) *Resolver {
	return &Resolver{
		service:  svc,
		validate: validator.New(),
	}
}

func (r *Resolver) Leftovers(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
	var location *string
	if raw, ok := p.Args["location"].(string); ok {
		location = &raw
	}
	return r.service.List(ctx, location)
}

func (r *Resolver) Leftover(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p)
	if err != nil {
		return nil, err
	}
	return r.service.Get(ctx, id)
}

func (r *Resolver) CreateLeftover(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
	raw, ok := p.Args["leftoverInput"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("leftoverInput is required")
	}

	input := decodeLeftoverInput(raw)
	if err := r.validate.Struct(input); err != nil {
		return nil, err
	}
	return r.service.Create(ctx, input)
}

func (r *Resolver) UpdateLeftover(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p)
	if err != nil {
		return nil, err
	}
	raw, ok := p.Args["leftoverInput"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("leftoverInput is required")
	}

	input := decodeLeftoverUpdateInput(raw)
	if err := r.validate.Struct(input); err != nil {
		return nil, err
	}
	return r.service.Update(ctx, id, input)
}

func (r *Resolver) DeleteLeftover(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p)
	if err != nil {
		return nil, err
	}
	return r.service.Delete(ctx, id)
}

func (r *Resolver) ConsumeLeftover(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p)
	if err != nil {
		return nil, err
	}
	return r.service.Consume(ctx, id)
}

func (r *Resolver) ConsumePortion(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p)
	if err != nil {
		return nil, err
	}
	amount, ok := p.Args["amount"].(float64)
	if !ok {
		return nil, fmt.Errorf("amount is required")
	}
	return r.service.ConsumePortion(ctx, id, amount)
}

func idArg(p graphql.ResolveParams) (string, error) {
	id, ok := p.Args["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("id is required")
	}
	return id, nil
}

// decodeLeftoverInput converts the loosely-typed GraphQL argument map into
// the create input. Missing optional keys keep their zero values.
func decodeLeftoverInput(raw map[string]interface{}) types.LeftoverInput {
	input := types.LeftoverInput{}
	if name, ok := raw["name"].(string); ok {
		input.Name = name
	}
	if description, ok := raw["description"].(string); ok {
		input.Description = description
	}
	if portion, ok := raw["portion"].(float64); ok {
		input.Portion = &portion
	}
	if location, ok := raw["storageLocation"].(string); ok {
		input.StorageLocation = location
	}
	if expiry, ok := raw["expiryDate"].(string); ok {
		input.ExpiryDate = expiry
	}
	if tags, ok := raw["tags"].([]interface{}); ok {
		input.Tags = toStringSlice(tags)
	}
	return input
}

// decodeLeftoverUpdateInput converts the argument map into the partial
// update input. Only keys present in the map produce non-nil fields, which
// is what keeps unspecified fields untouched downstream.
func decodeLeftoverUpdateInput(raw map[string]interface{}) types.LeftoverUpdateInput {
	input := types.LeftoverUpdateInput{}
	if name, ok := raw["name"].(string); ok {
		input.Name = &name
	}
	if description, ok := raw["description"].(string); ok {
		input.Description = &description
	}
	if portion, ok := raw["portion"].(float64); ok {
		input.Portion = &portion
	}
	if location, ok := raw["storageLocation"].(string); ok {
		input.StorageLocation = &location
	}
	if expiry, ok := raw["expiryDate"].(string); ok {
		input.ExpiryDate = &expiry
	}
	if tags, ok := raw["tags"].([]interface{}); ok {
		converted := toStringSlice(tags)
		input.Tags = &converted
	}
	if consumed, ok := raw["consumed"].(bool); ok {
		input.Consumed = &consumed
	}
	if consumedDate, ok := raw["consumedDate"].(string); ok {
		input.ConsumedDate = &consumedDate
	}
	return input
}

func toStringSlice(values []interface{}) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// sourceLeftover extracts the parent record for field resolution
func sourceLeftover(p graphql.ResolveParams) (*models.Leftover, error) {
	leftover, ok := p.Source.(*models.Leftover)
	if !ok {
		return nil, fmt.Errorf("unexpected source type %T", p.Source)
	}
	return leftover, nil
}
