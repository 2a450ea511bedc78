package order

// Listing selects join the customer table so the soft reference resolves to a
// display name; COALESCE keeps orphaned references readable as "-".
const listOrdersBaseSQL = `
SELECT
    o.id,
    o.order_id,
    o.order_date,
    o.customer_id,
    o.saree_type,
    o.amount,
    o.payment_status,
    o.delivery_status,
    o.remarks,
    o.purchase_type,
    o.payment_mode,
    COALESCE(c.name, '-') AS customer_name
FROM orders o
LEFT JOIN customer c ON c.customer_id = o.customer_id
`

const searchOrdersCondSQL = `
(o.order_id LIKE ? COLLATE NOCASE
 OR o.saree_type LIKE ? COLLATE NOCASE
 OR o.customer_id LIKE ? COLLATE NOCASE)
`

const monthCondSQL = `
substr(o.order_date, 1, 7) = ?
`

// Pending-first is a two-key sort: the paid flag ascending (0 = still owed),
// then newest date. Internal id breaks remaining ties for determinism.
const orderByPendingSQL = `
ORDER BY (o.payment_status != 'Pending') ASC, o.order_date DESC, o.id ASC
`

const orderByDateSQL = `
ORDER BY o.order_date DESC, o.id ASC
`

const orderByAmountSQL = `
ORDER BY o.amount DESC, o.id ASC
`

const getOrderSQL = `
SELECT
    o.id,
    o.order_id,
    o.order_date,
    o.customer_id,
    o.saree_type,
    o.amount,
    o.payment_status,
    o.delivery_status,
    o.remarks,
    o.purchase_type,
    o.payment_mode,
    COALESCE(c.name, '-') AS customer_name
FROM orders o
LEFT JOIN customer c ON c.customer_id = o.customer_id
WHERE o.order_id = ?
`

const createOrderSQL = `
INSERT INTO orders (
    order_id, order_date, customer_id, saree_type, amount,
    payment_status, delivery_status, remarks, purchase_type, payment_mode
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateOrderSQL = `
UPDATE orders
SET order_date = ?, customer_id = ?, saree_type = ?, amount = ?,
    payment_status = ?, delivery_status = ?, remarks = ?,
    purchase_type = ?, payment_mode = ?
WHERE order_id = ?
`

const deleteOrderSQL = `
DELETE FROM orders
WHERE order_id = ?
`

const maxOrderSuffixSQL = `
SELECT COALESCE(MAX(CAST(substr(order_id, 2) AS INTEGER)), 0)
FROM orders
WHERE order_id LIKE 'O%'
`
