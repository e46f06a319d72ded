package mirror

// SQL query constants organized by entity.
// PostgresStore methods reference these constants.

// Catalog queries.
const (
	queryUpsertSupplier = `
		INSERT INTO suppliers (
			uuid, name, supplier_url, logo, summary, last_modified, synced_at
		) VALUES (
			@uuid, @name, @supplier_url, @logo, @summary, @last_modified, now()
		)
		ON CONFLICT (uuid) DO UPDATE SET
			name = EXCLUDED.name,
			supplier_url = EXCLUDED.supplier_url,
			logo = EXCLUDED.logo,
			summary = EXCLUDED.summary,
			last_modified = EXCLUDED.last_modified,
			synced_at = now()`

	queryUpsertCategory = `
		INSERT INTO categories (uuid, name, parent_uuid, synced_at)
		VALUES (@uuid, @name, @parent_uuid, now())
		ON CONFLICT (uuid) DO UPDATE SET
			name = EXCLUDED.name,
			parent_uuid = EXCLUDED.parent_uuid,
			synced_at = now()`

	queryUpsertAttributeType = `
		INSERT INTO attribute_types (
			uuid, name, value_type, description, allowed_measurement_units, synced_at
		) VALUES (
			@uuid, @name, @value_type, @description, @allowed_measurement_units, now()
		)
		ON CONFLICT (uuid) DO UPDATE SET
			name = EXCLUDED.name,
			value_type = EXCLUDED.value_type,
			description = EXCLUDED.description,
			allowed_measurement_units = EXCLUDED.allowed_measurement_units,
			synced_at = now()`
)

// Catalog read queries.
const (
	queryGetSupplier = baseSuppliersSelect + `
		WHERE uuid = $1`

	queryListCategories = `
		SELECT uuid, name, parent_uuid
		FROM categories
		ORDER BY name`

	queryListAttributeTypes = `
		SELECT uuid, name, value_type, description, allowed_measurement_units
		FROM attribute_types
		ORDER BY name`
)

// Sync run queries.
const (
	queryInsertSyncRun = `
		INSERT INTO sync_runs (
			id, started_at, finished_at, status,
			suppliers, categories, attribute_types, error
		) VALUES (
			@id, @started_at, @finished_at, @status,
			@suppliers, @categories, @attribute_types, @error
		)`

	queryLastSyncRun = `
		SELECT id, started_at, finished_at, status,
			suppliers, categories, attribute_types, error
		FROM sync_runs
		ORDER BY started_at DESC
		LIMIT 1`
)
