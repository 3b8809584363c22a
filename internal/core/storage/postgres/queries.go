package postgres

// SQL for the series tables created by migration 001.

const (
	queryDescribeSeries = `
		SELECT
			unique_id, identifier, parameter, unit,
			location_identifier, location_name,
			computation_identifier, computation_period, utc_offset_minutes
		FROM series_descriptions
		WHERE unique_id = ANY($1)
		ORDER BY unique_id ASC
	`

	// queryRetrievePoints is half-open so adjacent windows never share a point.
	queryRetrievePoints = `
		SELECT ts, value, display
		FROM series_points
		WHERE unique_id = $1
		  AND ts >= $2
		  AND ts < $3
		ORDER BY ts ASC
	`

	// queryRetrieveQualifiers returns every qualifier overlapping [$2, $3).
	queryRetrieveQualifiers = `
		SELECT identifier, start_time, end_time, applied_by
		FROM series_qualifiers
		WHERE unique_id = $1
		  AND start_time < $3
		  AND end_time >= $2
		ORDER BY start_time ASC, identifier ASC
	`

	queryLookupQualifierMetadata = `
		SELECT identifier, code, display_name
		FROM qualifier_metadata
		WHERE identifier = ANY($1)
		ORDER BY identifier ASC
	`

	queryUpsertDescription = `
		INSERT INTO series_descriptions (
			unique_id, identifier, parameter, unit,
			location_identifier, location_name,
			computation_identifier, computation_period, utc_offset_minutes, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (unique_id) DO UPDATE SET
			identifier = EXCLUDED.identifier,
			parameter = EXCLUDED.parameter,
			unit = EXCLUDED.unit,
			location_identifier = EXCLUDED.location_identifier,
			location_name = EXCLUDED.location_name,
			computation_identifier = EXCLUDED.computation_identifier,
			computation_period = EXCLUDED.computation_period,
			utc_offset_minutes = EXCLUDED.utc_offset_minutes,
			updated_at = EXCLUDED.updated_at
	`

	queryUpsertPoint = `
		INSERT INTO series_points (unique_id, ts, value, display)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (unique_id, ts) DO UPDATE SET
			value = EXCLUDED.value,
			display = EXCLUDED.display
	`

	queryDeleteQualifiers = `
		DELETE FROM series_qualifiers WHERE unique_id = $1
	`

	queryInsertQualifier = `
		INSERT INTO series_qualifiers (unique_id, identifier, start_time, end_time, applied_by)
		VALUES ($1, $2, $3, $4, $5)
	`

	queryUpsertQualifierMetadata = `
		INSERT INTO qualifier_metadata (identifier, code, display_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (identifier) DO UPDATE SET
			code = EXCLUDED.code,
			display_name = EXCLUDED.display_name
	`
)
