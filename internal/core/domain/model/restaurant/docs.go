// Package restaurant provides the catalog side of the ongs-eats domain:
// restaurants, their categories, and the dishes on their menus.
//
// The package includes:
//   - Restaurant: The aggregate root owned by exactly one Owner user
//   - Category: A normalized, slug-keyed grouping of restaurants
//   - Dish: A menu entry with an ordered option/choice customization schema
//
// Key business rules:
//   - Category names normalize to a slug (trim, lowercase, space-to-hyphen)
//     so equivalent raw names resolve to the same category
//   - A dish always belongs to a restaurant and carries a non-negative base
//     price in integer base units
//   - An option carries either a flat extra surcharge or a list of choices;
//     when both are present the flat extra takes precedence in pricing
package restaurant
