/*
Package query turns flat, string-keyed input into nested structures.

[Parse] reads a URL query string and interprets PHP-style bracket suffixes:

	a=1            scalar
	a[]=1&a[]=2    list, appended in order
	a[3]=x         list, sparse; missing slots are nil
	a[k]=v         mapping

When one name is used with incompatible shapes the existing value is
converted rather than dropped: a scalar becomes element or key "0", a list
becomes a mapping keyed by its indices, and an append to a mapping lands
under the empty key.

[PathToTree] groups dotted paths such as "address.postal_code" into nested
mappings, the shape validation errors are usually reported in.
*/
package query
