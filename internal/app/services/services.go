package services

// Services defined in this package:
// - AuthService: login, token refresh and the current-user lookup
// - StudentService: CRUD over student records
// - UserService: CRUD over user records, hashing passwords on the way in
