package followup

const getAllFollowUpsSQL = `
SELECT id, fu_id, fu_date, customer_name, insta, topic, next_date, status, remarks
FROM followup
ORDER BY id
`

const searchFollowUpsSQL = `
SELECT id, fu_id, fu_date, customer_name, insta, topic, next_date, status, remarks
FROM followup
WHERE customer_name LIKE ? COLLATE NOCASE
   OR insta LIKE ? COLLATE NOCASE
   OR topic LIKE ? COLLATE NOCASE
ORDER BY id
`

const getFollowUpSQL = `
SELECT id, fu_id, fu_date, customer_name, insta, topic, next_date, status, remarks
FROM followup
WHERE fu_id = ?
`

const createFollowUpSQL = `
INSERT INTO followup (
    fu_id, fu_date, customer_name, insta, topic, next_date, status, remarks
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

const updateFollowUpSQL = `
UPDATE followup
SET fu_date = ?, customer_name = ?, insta = ?, topic = ?,
    next_date = ?, status = ?, remarks = ?
WHERE fu_id = ?
`

const deleteFollowUpSQL = `
DELETE FROM followup
WHERE fu_id = ?
`

const maxFollowUpSuffixSQL = `
SELECT COALESCE(MAX(CAST(substr(fu_id, 2) AS INTEGER)), 0)
FROM followup
WHERE fu_id LIKE 'F%'
`
