package postgre

const listVendorsQuery = `
	SELECT id, name, specialty, email
	FROM vendors
	WHERE specialty = $1 AND active = TRUE
	ORDER BY created_at, id`
