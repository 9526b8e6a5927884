/*
Package config loads the optional recolor configuration file.

	            +-------------+
	            |   Config    |
	            | (target +   |
	            |  rules)     |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+  +----+----+  +----+----+
	|   YAML   |  |   HCL   |  |  JSON   |
	|  Parser  |  |  Parser |  |  Parser |
	+----------+  +---------+  +---------+

🎯 Purpose:
- Picks a parser by file extension
- Rejects unknown fields
- Fills in the default target, palette and success message
- Turns the config into an ordered replacement table

🔄 Flow:
1. Reads the file
2. Parses format-specific syntax
3. Validates and applies defaults
4. Rules() yields the table handed to the transformer

Explicit replacements always win over a named palette.

🔍 Example:

	cfg, err := config.Load(ctx, "recolor.hcl")
	if err != nil {
		return err
	}
	rules, err := cfg.Rules()
*/
package config
