package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/leftovers-tracker/backend/internal/models"
	"github.com/leftovers-tracker/backend/internal/types"
)

// storageLocationEnum is the fixed set of places a leftover can be kept
var storageLocationEnum = graphql.NewEnum(graphql.EnumConfig{
	Name:        "StorageLocation",
	Description: "Available storage locations for leftover items",
	Values: graphql.EnumValueConfigMap{
		"freezer": &graphql.EnumValueConfig{Value: models.LocationFreezer},
		"fridge":  &graphql.EnumValueConfig{Value: models.LocationFridge},
	},
})

// NewSchema builds the executable GraphQL schema around a resolver. All
// timestamp fields serialize as string-encoded epoch milliseconds; absent
// optional timestamps serialize as null.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	leftoverType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "Leftover",
		Description: "Leftover food item with quantity, location and expiry metadata",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					leftover, err := sourceLeftover(p)
					if err != nil {
						return nil, err
					}
					return leftover.ID.String(), nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					leftover, err := sourceLeftover(p)
					if err != nil {
						return nil, err
					}
					return leftover.Name, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					leftover, err := sourceLeftover(p)
					if err != nil {
						return nil, err
					}
					return leftover.Description, nil
				},
			},
			"portion": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					leftover, err := sourceLeftover(p)
					if err != nil {
						return nil, err
					}
					return leftover.Portion, nil
				},
			},
			"storageLocation": &graphql.Field{
				Type: graphql.NewNonNull(storageLocationEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					leftover, err := sourceLeftover(p)
					if err != nil {
						return nil, err
					}
					return leftover.StorageLocation, nil
				},
			},
			"storedDate": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					leftover, err := sourceLeftover(p)
					if err != nil {
						return nil, err
					}
					return types.FormatEpochMillis(leftover.StoredDate), nil
				},
			},
			"expiryDate": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					leftover, err := sourceLeftover(p)
					if err != nil {
						return nil, err
					}
					return types.FormatEpochMillis(leftover.ExpiryDate), nil
				},
			},
			"tags": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					leftover, err := sourceLeftover(p)
					if err != nil {
						return nil, err
					}
					return []string(leftover.Tags), nil
				},
			},
			"consumed": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					leftover, err := sourceLeftover(p)
					if err != nil {
						return nil, err
					}
					return leftover.Consumed, nil
				},
			},
			"consumedDate": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					leftover, err := sourceLeftover(p)
					if err != nil {
						return nil, err
					}
					if leftover.ConsumedDate == nil {
						return nil, nil
					}
					return types.FormatEpochMillis(*leftover.ConsumedDate), nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					leftover, err := sourceLeftover(p)
					if err != nil {
						return nil, err
					}
					if leftover.CreatedAt.IsZero() {
						return nil, nil
					}
					return types.FormatEpochMillis(leftover.CreatedAt), nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					leftover, err := sourceLeftover(p)
					if err != nil {
						return nil, err
					}
					if leftover.UpdatedAt.IsZero() {
						return nil, nil
					}
					return types.FormatEpochMillis(leftover.UpdatedAt), nil
				},
			},
		},
	})

	leftoverInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name:        "LeftoverInput",
		Description: "Input for creating new leftover items",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":            &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"description":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"portion":         &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"storageLocation": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(storageLocationEnum)},
			"expiryDate":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"tags":            &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.String)},
		},
	})

	leftoverUpdateInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name:        "LeftoverUpdateInput",
		Description: "Input for updating existing leftover items; all fields optional",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":            &graphql.InputObjectFieldConfig{Type: graphql.String},
			"description":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"portion":         &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"storageLocation": &graphql.InputObjectFieldConfig{Type: storageLocationEnum},
			"expiryDate":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"tags":            &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.String)},
			"consumed":        &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
			"consumedDate":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"leftovers": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(leftoverType))),
				Description: "Retrieve all leftovers with optional location filter, newest first",
				Args: graphql.FieldConfigArgument{
					"location": &graphql.ArgumentConfig{Type: storageLocationEnum},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Leftovers(p.Context, p)
				},
			},
			"leftover": &graphql.Field{
				Type:        leftoverType,
				Description: "Retrieve a specific leftover by its unique ID",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Leftover(p.Context, p)
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createLeftover": &graphql.Field{
				Type:        graphql.NewNonNull(leftoverType),
				Description: "Create a new leftover with the current timestamp as storage date",
				Args: graphql.FieldConfigArgument{
					"leftoverInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(leftoverInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.CreateLeftover(p.Context, p)
				},
			},
			"updateLeftover": &graphql.Field{
				Type:        graphql.NewNonNull(leftoverType),
				Description: "Update an existing leftover; only supplied fields change",
				Args: graphql.FieldConfigArgument{
					"id":            &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"leftoverInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(leftoverUpdateInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.UpdateLeftover(p.Context, p)
				},
			},
			"deleteLeftover": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.Boolean),
				Description: "Permanently delete a leftover; true if a row was removed",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.DeleteLeftover(p.Context, p)
				},
			},
			"consumeLeftover": &graphql.Field{
				Type:        graphql.NewNonNull(leftoverType),
				Description: "Mark a leftover as consumed with the current timestamp",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.ConsumeLeftover(p.Context, p)
				},
			},
			"consumePortion": &graphql.Field{
				Type:        graphql.NewNonNull(leftoverType),
				Description: "Consume a portion amount; marks consumed when the portion reaches zero",
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"amount": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.ConsumePortion(p.Context, p)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
