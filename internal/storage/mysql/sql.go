package mysql

const insertHotelsPrefix = `INSERT INTO hotels
  (property_id, property_name, address, city, customer_segment,
   hotel_star_rating, average_rating, price,
   hotel_facilities, reviews_summary, top_positive_review, top_negative_review, hotel_description)
VALUES `

const insertHotelsOnDup = ` ON DUPLICATE KEY UPDATE
  property_name       = VALUES(property_name),
  address             = VALUES(address),
  city                = VALUES(city),
  customer_segment    = VALUES(customer_segment),
  hotel_star_rating   = VALUES(hotel_star_rating),
  average_rating      = VALUES(average_rating),
  price               = VALUES(price),
  hotel_facilities    = VALUES(hotel_facilities),
  reviews_summary     = VALUES(reviews_summary),
  top_positive_review = VALUES(top_positive_review),
  top_negative_review = VALUES(top_negative_review),
  hotel_description   = VALUES(hotel_description),
  updated_at          = CURRENT_TIMESTAMP
`

// Stable order: the catalog's record order (and so search index positions)
// must not depend on insertion order.
const selectHotelsSQL = `
SELECT
  property_id,
  property_name,
  address,
  city,
  customer_segment,
  hotel_star_rating,
  average_rating,
  price,
  hotel_facilities,
  reviews_summary,
  top_positive_review,
  top_negative_review,
  hotel_description
FROM hotels
ORDER BY property_id
`
