package validator

import (
	"github.com/ccbrown/gqlcore/graphql/schema"
)

// The types below make up a shared schema fixture used across the validator package's tests. It's
// intentionally broader than any single rule needs, so that new tests can usually be written
// against fields that already exist here.

var nodeInterfaceType = &schema.InterfaceType{
	Name: "Node",
	Fields: map[string]*schema.FieldDefinition{
		"id": {Type: schema.IDType},
	},
}

var interfaceInterfaceType = &schema.InterfaceType{
	Name: "Interface",
	Fields: map[string]*schema.FieldDefinition{
		"scalar": {Type: schema.StringType},
	},
}

var petInterfaceType = &schema.InterfaceType{
	Name: "Pet",
	Fields: map[string]*schema.FieldDefinition{
		"nickname": {Type: schema.NewNonNullType(schema.StringType)},
	},
}

var dogObjectType = &schema.ObjectType{
	Name:                  "Dog",
	ImplementedInterfaces: []*schema.InterfaceType{petInterfaceType},
	Fields: map[string]*schema.FieldDefinition{
		"nickname":   {Type: schema.NewNonNullType(schema.StringType)},
		"barkVolume": {Type: schema.IntType},
	},
}

var catObjectType = &schema.ObjectType{
	Name:                  "Cat",
	ImplementedInterfaces: []*schema.InterfaceType{petInterfaceType},
	Fields: map[string]*schema.FieldDefinition{
		"nickname":   {Type: schema.NewNonNullType(schema.StringType)},
		"meowVolume": {Type: schema.IntType},
	},
}

var unionObjectAType = &schema.ObjectType{
	Name: "UnionObjectA",
	Fields: map[string]*schema.FieldDefinition{
		"a": {Type: schema.StringType},
	},
}

var unionObjectBType = &schema.ObjectType{
	Name: "UnionObjectB",
	Fields: map[string]*schema.FieldDefinition{
		"b": {Type: schema.StringType},
	},
}

var unionUnionType = &schema.UnionType{
	Name:        "Union",
	MemberTypes: []*schema.ObjectType{unionObjectAType, unionObjectBType},
}

var objectInputType = &schema.InputObjectType{
	Name: "ObjectInput",
	Fields: map[string]*schema.InputValueDefinition{
		"requiredString":  {Type: schema.NewNonNullType(schema.StringType)},
		"defaultedString": {Type: schema.StringType},
	},
}

var complexInputType = &schema.InputObjectType{
	Name: "ComplexInput",
	Fields: map[string]*schema.InputValueDefinition{
		"name": {Type: schema.StringType},
	},
}

var fooBarEnumType = &schema.EnumType{
	Name: "FooBarEnum",
	Values: map[string]*schema.EnumValueDefinition{
		"FOO": {},
		"BAR": {},
	},
}

// objectType is the shared root type, named "Object". Its "object" and "objects" fields return
// objectType itself; init sets their types, since a variable's initializer can't refer to the
// variable.
var objectType = &schema.ObjectType{
	Name: "Object",
	Fields: map[string]*schema.FieldDefinition{
		"node": {
			Type: nodeInterfaceType,
			Arguments: map[string]*schema.InputValueDefinition{
				"id": {Type: schema.NewNonNullType(schema.IDType)},
			},
		},
		"object": {
			Arguments: map[string]*schema.InputValueDefinition{
				"object": {Type: objectInputType},
			},
		},
		"interface": {
			Type: interfaceInterfaceType,
		},
		"union": {
			Type: unionUnionType,
		},
		"scalar": {
			Type: schema.StringType,
		},
		"int": {
			Type: schema.IntType,
		},
		"int2": {
			Type: schema.IntType,
		},
		"pet": {
			Type: petInterfaceType,
		},
		"findDog": {
			Type: dogObjectType,
			Arguments: map[string]*schema.InputValueDefinition{
				"complex": {Type: complexInputType},
			},
		},
		"booleanArgField": {
			Type: schema.BooleanType,
			Arguments: map[string]*schema.InputValueDefinition{
				"booleanArg": {Type: schema.BooleanType},
			},
		},
		"floatArgField": {
			Type: schema.FloatType,
			Arguments: map[string]*schema.InputValueDefinition{
				"floatArg": {Type: schema.FloatType},
			},
		},
		"intArgField": {
			Type: schema.IntType,
			Arguments: map[string]*schema.InputValueDefinition{
				"intArg": {Type: schema.IntType},
			},
		},
		"enumArgField": {
			Type: fooBarEnumType,
			Arguments: map[string]*schema.InputValueDefinition{
				"enumArg": {Type: fooBarEnumType},
			},
		},
		"intListArgField": {
			Type: schema.NewListType(schema.IntType),
			Arguments: map[string]*schema.InputValueDefinition{
				"intListArg": {Type: schema.NewListType(schema.IntType)},
			},
		},
		"intListListArgField": {
			Type: schema.NewListType(schema.NewListType(schema.IntType)),
			Arguments: map[string]*schema.InputValueDefinition{
				"intListListArg": {Type: schema.NewListType(schema.NewListType(schema.IntType))},
			},
		},
		"costFromArg": {
			Type: schema.IntType,
			Arguments: map[string]*schema.InputValueDefinition{
				"cost": {Type: schema.IntType, DefaultValue: 10},
			},
			Cost: func(ctx *schema.FieldCostContext) schema.FieldCost {
				cost := 10
				if v, ok := ctx.Arguments["cost"]; ok {
					if c, ok := v.(int); ok {
						cost = c
					}
				}
				return schema.FieldCost{Resolver: cost}
			},
		},
		"freeBoolean": {
			Type: schema.BooleanType,
			Cost: schema.FieldResolverCost(0),
		},
		"objects": {
			Arguments: map[string]*schema.InputValueDefinition{
				"first": {Type: schema.IntType},
			},
			Cost: func(ctx *schema.FieldCostContext) schema.FieldCost {
				first := 0
				if v, ok := ctx.Arguments["first"]; ok {
					if f, ok := v.(int); ok {
						first = f
					}
				}
				return schema.FieldCost{Resolver: 1, Multiplier: first}
			},
		},
	},
}

func init() {
	objectType.Fields["object"].Type = objectType
	objectType.Fields["objects"].Type = schema.NewListType(objectType)
}
