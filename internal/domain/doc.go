// Package domain contains the core model of soonpage: domains, categories,
// SEO copy packs and the pure functions that connect them.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// HTML templates, or the filesystem. Infra/adapters map into/from these types.
package domain
