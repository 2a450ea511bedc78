package dashboard

const countCustomersSQL = `
SELECT COUNT(*) FROM customer
`

const countOrdersSQL = `
SELECT COUNT(*) FROM orders
`

const totalSalesSQL = `
SELECT COALESCE(SUM(amount), 0) FROM orders
`

const countPendingPaymentsSQL = `
SELECT COUNT(*) FROM orders WHERE payment_status = 'Pending'
`

const countPendingDeliveriesSQL = `
SELECT COUNT(*) FROM orders WHERE delivery_status = 'Pending'
`

const countPendingFollowUpsSQL = `
SELECT COUNT(*) FROM followup WHERE status = 'Pending'
`

const monthlySalesSQL = `
SELECT
    substr(order_date, 1, 7) AS month,
    COALESCE(SUM(amount), 0) AS amount
FROM orders
GROUP BY month
ORDER BY month
`

const sareeTypeCountsSQL = `
SELECT
    COALESCE(NULLIF(TRIM(saree_type), ''), 'Unknown') AS saree_type,
    COUNT(*) AS count
FROM orders
GROUP BY 1
ORDER BY count DESC, saree_type ASC
`

// Ties on spend rank break on customer_id ascending for a stable top-5.
const topCustomersSQL = `
SELECT
    o.customer_id,
    COALESCE(c.name, o.customer_id) AS name,
    SUM(o.amount) AS total
FROM orders o
LEFT JOIN customer c ON c.customer_id = o.customer_id
GROUP BY o.customer_id
ORDER BY total DESC, o.customer_id ASC
LIMIT 5
`
