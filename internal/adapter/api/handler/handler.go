package handler

import (
	"goldenwok/internal/infrastructure/storage"
	"goldenwok/internal/usecase"
)

var (
	authHandler    *AuthHandler
	userHandler    *UserHandler
	productHandler *ProductHandler
	ratingHandler  *RatingHandler
	reviewHandler  *ReviewHandler
	replyHandler   *ReplyHandler
	adminHandler   *AdminHandler
	fileHandler    *FileHandler
	contactHandler *ContactHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	productUseCase *usecase.ProductUseCase,
	ratingUseCase *usecase.RatingUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	replyUseCase *usecase.ReplyUseCase,
	adminUseCase *usecase.AdminUseCase,
	contactUseCase *usecase.ContactUseCase,
	storageClient *storage.CloudStorageClient,
	cookieSecure bool,
) {
	authHandler = NewAuthHandler(authUseCase, userUseCase, cookieSecure)
	userHandler = NewUserHandler(userUseCase)
	productHandler = NewProductHandler(productUseCase, storageClient)
	ratingHandler = NewRatingHandler(ratingUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	replyHandler = NewReplyHandler(replyUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
	fileHandler = NewFileHandler(storageClient)
	contactHandler = NewContactHandler(contactUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetRatingHandler() *RatingHandler {
	return ratingHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetReplyHandler() *ReplyHandler {
	return replyHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func GetContactHandler() *ContactHandler {
	return contactHandler
}
