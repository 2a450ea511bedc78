package customer

const getAllCustomersSQL = `
SELECT id, customer_id, name, insta, phone, city, ctype, notes
FROM customer
ORDER BY id
`

const searchCustomersSQL = `
SELECT id, customer_id, name, insta, phone, city, ctype, notes
FROM customer
WHERE name LIKE ? COLLATE NOCASE
   OR insta LIKE ? COLLATE NOCASE
   OR phone LIKE ? COLLATE NOCASE
   OR city LIKE ? COLLATE NOCASE
ORDER BY id
`

const getCustomerSQL = `
SELECT id, customer_id, name, insta, phone, city, ctype, notes
FROM customer
WHERE customer_id = ?
`

const createCustomerSQL = `
INSERT INTO customer (
    customer_id, name, insta, phone, city, ctype, notes
) VALUES (?, ?, ?, ?, ?, ?, ?)
`

const updateCustomerSQL = `
UPDATE customer
SET name = ?, insta = ?, phone = ?, city = ?, ctype = ?, notes = ?
WHERE customer_id = ?
`

const deleteCustomerSQL = `
DELETE FROM customer
WHERE customer_id = ?
`

const maxCustomerSuffixSQL = `
SELECT COALESCE(MAX(CAST(substr(customer_id, 2) AS INTEGER)), 0)
FROM customer
WHERE customer_id LIKE 'C%'
`
