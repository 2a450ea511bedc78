package payments

const listPaymentsBaseSQL = `
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

const countPaymentsBaseSQL = `
SELECT COUNT(*)
FROM orders o
`

const monthCondSQL = `
substr(o.order_date, 1, 7) = ?
`

const statusCondSQL = `
o.payment_status = ?
`

// NULL or empty modes are treated as Pending everywhere in this view.
const modeCondSQL = `
COALESCE(NULLIF(o.payment_mode, ''), 'Pending') = ?
`

const orderByAmountSQL = `
ORDER BY o.amount DESC, o.id ASC
`

const orderByStatusSQL = `
ORDER BY o.payment_status ASC, o.order_date DESC, o.id ASC
`

const orderByDefaultSQL = `
ORDER BY (o.payment_status != 'Pending') ASC, o.order_date DESC, o.id ASC
`

const modeBreakdownSQL = `
SELECT
    COALESCE(NULLIF(payment_mode, ''), 'Pending') AS mode,
    COALESCE(SUM(amount), 0) AS amount
FROM orders
GROUP BY mode
`

const monthlyByStatusSQL = `
SELECT
    substr(order_date, 1, 7) AS month,
    COALESCE(SUM(amount), 0) AS amount
FROM orders
WHERE payment_status = ?
GROUP BY month
ORDER BY month
`

const sumByStatusSQL = `
SELECT COALESCE(SUM(amount), 0)
FROM orders
WHERE payment_status = ?
`

const sumByStatusMonthSQL = `
SELECT COALESCE(SUM(amount), 0)
FROM orders
WHERE payment_status = ? AND substr(order_date, 1, 7) = ?
`
