package postgre

// claimRequestQuery is a compare-and-set on the request status: it only matches
// a row that is still New and unassigned.
const claimRequestQuery = `
	UPDATE maintenance_requests
	SET status = 'Scheduled', assigned_to = $1, assigned_vendor_email = $2, notes = $3, updated_at = NOW()
	WHERE id = $4 AND tenant_id = $5 AND status = 'New' AND assigned_to IS NULL`
