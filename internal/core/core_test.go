package core_test

import (
	"context"
	"errors"

	"feedbacker/internal/core"
	"feedbacker/internal/core/fake"
	"feedbacker/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Feedbacker", func() {
	var (
		feedbacker *core.Feedbacker
		fakeRepo   *fake.Repository
		ctx        context.Context
		fakeErr    error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		feedbacker = core.NewFeedbacker(zap.NewNop().Sugar(), fakeRepo)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg  core.RegisterMessage
			user core.UserRecord
			err  error
		)

		BeforeEach(func() {
			msg = core.RegisterMessage{
				Username:  "alice",
				Password:  "correct horse",
				Email:     "alice@example.com",
				FirstName: "Alice",
				LastName:  "Cooper",
			}
		})

		JustBeforeEach(func() {
			user, err = feedbacker.Register(ctx, msg)
		})

		When("registration succeeds", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(nil)
			})

			It("should store the user with a bcrypt hash, never the password", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("alice"))
				Expect(user.Email).To(Equal("alice@example.com"))

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, stored := fakeRepo.CreateUserArgsForCall(0)
				Expect(stored.Username).To(Equal("alice"))
				Expect(stored.PasswordHash).NotTo(Equal("correct horse"))
				Expect(bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse"))).To(Succeed())
			})
		})

		When("the username or email is already taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.ErrDuplicateUser)
			})

			It("should return ErrDuplicateUser", func() {
				Expect(err).To(MatchError(core.ErrDuplicateUser))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			msg      core.AuthMessage
			user     core.UserRecord
			err      error
			testUser repository.User
		)

		BeforeEach(func() {
			hash, hashErr := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
			Expect(hashErr).NotTo(HaveOccurred())

			testUser = repository.User{
				Username:     "alice",
				PasswordHash: string(hash),
				Email:        "alice@example.com",
			}
			msg = core.AuthMessage{
				Username: "alice",
				Password: "correct horse",
			}
			fakeRepo.GetUserReturns(testUser, nil)
		})

		JustBeforeEach(func() {
			user, err = feedbacker.Authenticate(ctx, msg)
		})

		When("the credentials are valid", func() {
			It("should return the user record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("alice"))

				Expect(fakeRepo.GetUserCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserArgsForCall(0)
				Expect(username).To(Equal("alice"))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				msg.Password = "wrong horse"
			})

			It("should return ErrInvalidCredentials", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("the user doesn't exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return the same ErrInvalidCredentials as a wrong password", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Profile", func() {
		var (
			caller   string
			user     core.UserRecord
			feedback []core.FeedbackRecord
			err      error
		)

		BeforeEach(func() {
			caller = "alice"
			fakeRepo.GetUserReturns(repository.User{
				Username: "alice",
				Email:    "alice@example.com",
			}, nil)
			fakeRepo.GetFeedbackForUserReturns([]repository.Feedback{
				{ID: 1, Title: "First", Username: "alice"},
				{ID: 2, Title: "Second", Username: "alice"},
			}, nil)
		})

		JustBeforeEach(func() {
			user, feedback, err = feedbacker.Profile(ctx, caller, "alice")
		})

		When("the owner requests their profile", func() {
			It("should return the user and their feedback", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("alice"))
				Expect(feedback).To(HaveLen(2))
				Expect(feedback[0].Title).To(Equal("First"))
			})
		})

		When("the caller is anonymous", func() {
			BeforeEach(func() {
				caller = ""
			})

			It("should return ErrUnauthenticated without looking the user up", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
				Expect(fakeRepo.GetUserCallCount()).To(Equal(0))
			})
		})

		When("the caller is another user", func() {
			BeforeEach(func() {
				caller = "bob"
			})

			It("should return ErrNotOwner without looking the user up", func() {
				Expect(err).To(MatchError(core.ErrNotOwner))
				Expect(fakeRepo.GetUserCallCount()).To(Equal(0))
			})
		})

		When("the user doesn't exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("loading the feedback fails", func() {
			BeforeEach(func() {
				fakeRepo.GetFeedbackForUserReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateFeedback", func() {
		var (
			caller   string
			msg      core.FeedbackMessage
			feedback core.FeedbackRecord
			err      error
		)

		BeforeEach(func() {
			caller = "alice"
			msg = core.FeedbackMessage{
				Username: "alice",
				Title:    "Great service",
				Content:  "Would recommend.",
			}
		})

		JustBeforeEach(func() {
			feedback, err = feedbacker.CreateFeedback(ctx, caller, msg)
		})

		When("the owner posts feedback", func() {
			BeforeEach(func() {
				fakeRepo.CreateFeedbackStub = func(ctx context.Context, fb *repository.Feedback) error {
					fb.ID = 7
					return nil
				}
			})

			It("should create the feedback under the owner's name", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(feedback.ID).To(Equal(uint(7)))
				Expect(feedback.Username).To(Equal("alice"))

				Expect(fakeRepo.CreateFeedbackCallCount()).To(Equal(1))
				_, stored := fakeRepo.CreateFeedbackArgsForCall(0)
				Expect(stored.Title).To(Equal("Great service"))
				Expect(stored.Username).To(Equal("alice"))
			})
		})

		When("the caller is anonymous", func() {
			BeforeEach(func() {
				caller = ""
			})

			It("should return ErrUnauthenticated", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
				Expect(fakeRepo.CreateFeedbackCallCount()).To(Equal(0))
			})
		})

		When("the caller targets another user's page", func() {
			BeforeEach(func() {
				caller = "bob"
			})

			It("should return ErrNotOwner", func() {
				Expect(err).To(MatchError(core.ErrNotOwner))
				Expect(fakeRepo.CreateFeedbackCallCount()).To(Equal(0))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateFeedbackReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetFeedback", func() {
		var (
			caller   string
			feedback core.FeedbackRecord
			err      error
		)

		BeforeEach(func() {
			caller = "alice"
			fakeRepo.GetFeedbackByIDReturns(repository.Feedback{
				ID:       7,
				Title:    "Great service",
				Username: "alice",
			}, nil)
		})

		JustBeforeEach(func() {
			feedback, err = feedbacker.GetFeedback(ctx, caller, 7)
		})

		When("the owner requests their feedback", func() {
			It("should return the feedback", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(feedback.ID).To(Equal(uint(7)))
				Expect(feedback.Title).To(Equal("Great service"))
			})
		})

		When("the caller is anonymous", func() {
			BeforeEach(func() {
				caller = ""
			})

			It("should return ErrUnauthenticated without looking the feedback up", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
				Expect(fakeRepo.GetFeedbackByIDCallCount()).To(Equal(0))
			})
		})

		When("the feedback belongs to another user", func() {
			BeforeEach(func() {
				caller = "bob"
			})

			It("should return ErrNotOwner", func() {
				Expect(err).To(MatchError(core.ErrNotOwner))
			})
		})

		When("the feedback doesn't exist", func() {
			BeforeEach(func() {
				fakeRepo.GetFeedbackByIDReturns(repository.Feedback{}, repository.ErrFeedbackNotFound)
			})

			It("should return ErrFeedbackNotFound", func() {
				Expect(err).To(MatchError(core.ErrFeedbackNotFound))
			})
		})
	})

	Describe("UpdateFeedback", func() {
		var (
			caller   string
			feedback core.FeedbackRecord
			err      error
		)

		BeforeEach(func() {
			caller = "alice"
			fakeRepo.GetFeedbackByIDReturns(repository.Feedback{
				ID:       7,
				Title:    "Old title",
				Content:  "Old content.",
				Username: "alice",
			}, nil)
		})

		JustBeforeEach(func() {
			feedback, err = feedbacker.UpdateFeedback(ctx, caller, 7, "New title", "New content.")
		})

		When("the owner updates their feedback", func() {
			BeforeEach(func() {
				fakeRepo.UpdateFeedbackReturns(nil)
			})

			It("should save the new title and content", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(feedback.Title).To(Equal("New title"))
				Expect(feedback.Content).To(Equal("New content."))

				Expect(fakeRepo.UpdateFeedbackCallCount()).To(Equal(1))
				_, stored := fakeRepo.UpdateFeedbackArgsForCall(0)
				Expect(stored.ID).To(Equal(uint(7)))
				Expect(stored.Title).To(Equal("New title"))
				Expect(stored.Username).To(Equal("alice"))
			})
		})

		When("the feedback belongs to another user", func() {
			BeforeEach(func() {
				caller = "bob"
			})

			It("should return ErrNotOwner without saving", func() {
				Expect(err).To(MatchError(core.ErrNotOwner))
				Expect(fakeRepo.UpdateFeedbackCallCount()).To(Equal(0))
			})
		})

		When("the save fails", func() {
			BeforeEach(func() {
				fakeRepo.UpdateFeedbackReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteFeedback", func() {
		var (
			caller string
			err    error
		)

		BeforeEach(func() {
			caller = "alice"
			fakeRepo.GetFeedbackByIDReturns(repository.Feedback{
				ID:       7,
				Username: "alice",
			}, nil)
		})

		JustBeforeEach(func() {
			err = feedbacker.DeleteFeedback(ctx, caller, 7)
		})

		When("the owner deletes their feedback", func() {
			BeforeEach(func() {
				fakeRepo.DeleteFeedbackReturns(nil)
			})

			It("should delete the feedback", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.DeleteFeedbackCallCount()).To(Equal(1))
				_, id := fakeRepo.DeleteFeedbackArgsForCall(0)
				Expect(id).To(Equal(uint(7)))
			})
		})

		When("the feedback belongs to another user", func() {
			BeforeEach(func() {
				caller = "bob"
			})

			It("should return ErrNotOwner without deleting", func() {
				Expect(err).To(MatchError(core.ErrNotOwner))
				Expect(fakeRepo.DeleteFeedbackCallCount()).To(Equal(0))
			})
		})

		When("the delete fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteFeedbackReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteAccount", func() {
		var (
			caller string
			err    error
		)

		BeforeEach(func() {
			caller = "alice"
			fakeRepo.GetUserReturns(repository.User{Username: "alice"}, nil)
		})

		JustBeforeEach(func() {
			err = feedbacker.DeleteAccount(ctx, caller, "alice")
		})

		When("the owner deletes their account", func() {
			BeforeEach(func() {
				fakeRepo.DeleteUserWithFeedbackReturns(nil)
			})

			It("should delete the user and their feedback", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.DeleteUserWithFeedbackCallCount()).To(Equal(1))
				_, username := fakeRepo.DeleteUserWithFeedbackArgsForCall(0)
				Expect(username).To(Equal("alice"))
			})
		})

		When("the caller is anonymous", func() {
			BeforeEach(func() {
				caller = ""
			})

			It("should return ErrUnauthenticated", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
				Expect(fakeRepo.DeleteUserWithFeedbackCallCount()).To(Equal(0))
			})
		})

		When("the caller is another user", func() {
			BeforeEach(func() {
				caller = "bob"
			})

			It("should return ErrNotOwner", func() {
				Expect(err).To(MatchError(core.ErrNotOwner))
				Expect(fakeRepo.DeleteUserWithFeedbackCallCount()).To(Equal(0))
			})
		})

		When("the account doesn't exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("the delete fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteUserWithFeedbackReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
