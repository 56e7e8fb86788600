package postgre

const createRequestQuery = `
	INSERT INTO maintenance_requests (
		id, tenant_id, property_id, tenant_name, unit_number, contact_info,
		title, description, request_type, priority, status,
		media_url, permission_to_enter, notes, created_at, updated_at
	)
	VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, 'New', NULLIF($11, ''), $12, $13, NOW(), NOW())
	RETURNING created_at, updated_at`

const getRequestQuery = `
	SELECT id, tenant_id, COALESCE(property_id, ''), tenant_name, unit_number, contact_info,
		title, description, request_type, priority, status,
		COALESCE(assigned_to, ''), COALESCE(assigned_vendor_email, ''),
		COALESCE(media_url, ''), permission_to_enter, notes, created_at, updated_at
	FROM maintenance_requests
	WHERE id = $1 AND tenant_id = $2
	LIMIT 1`
